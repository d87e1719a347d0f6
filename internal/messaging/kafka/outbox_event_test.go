package kafka_test

import (
	"context"
	"testing"

	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-9")

	e, err := kafka.NewPendingEvent(ctx, kafka.AggregatePayroll, 42, "payroll_recorded", "hr.payroll.recorded.v1",
		map[string]any{"payroll_id": 42})
	require.NoError(t, err)

	_, err = uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.Equal(t, "rid-9", e.RequestID)
	assert.Equal(t, "42", e.AggregateID)
	assert.Equal(t, kafka.OutboxStatusPending, e.Status)
	assert.JSONEq(t, `{"payroll_id":42}`, string(e.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(e))
}

func TestNewPendingEvent_UnencodablePayload(t *testing.T) {
	_, err := kafka.NewPendingEvent(context.Background(), kafka.AggregatePayroll, 1, "payroll_recorded", "t",
		map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "encode payroll_recorded payload")
}
