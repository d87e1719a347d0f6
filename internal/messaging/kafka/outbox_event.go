package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go-hrdesk/internal/shared/contextutil"

	"github.com/google/uuid"
)

// Aggregate names written to outbox_events.aggregate_type.
const (
	AggregateInterview = "interview"
	AggregatePayroll   = "payroll"
)

// NewPendingEvent marshals payload and stamps a fresh event id and the
// request id carried by ctx.
func NewPendingEvent(ctx context.Context, aggregate string, aggregateID int64, eventType, topic string, payload any) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}

	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggregate,
		AggregateID:   strconv.FormatInt(aggregateID, 10),
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	}, nil
}
