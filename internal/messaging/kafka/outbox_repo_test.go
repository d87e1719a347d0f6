package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-hrdesk/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "3f1c0b5e-0a57-4a53-9a53-6b1a8f5d2c11",
		RequestID:     "rid-1",
		AggregateType: "payroll",
		AggregateID:   "42",
		EventType:     "payroll_recorded",
		Topic:         "hr.payroll.recorded.v1",
		Payload:       []byte(`{"payroll_id":42}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := validEvent()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := validEvent()
	e.Payload = nil

	err = kafka.NewOutboxRepository(db).Create(context.Background(), e)
	assert.EqualError(t, err, "outbox payload is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e1", "rid", "payroll", "42", "payroll_recorded", "hr.payroll.recorded.v1", []byte(`{}`), "pending", 0, now).
		AddRow("e2", "", "interview", "7", "interview_recorded", "hr.interview.recorded.v1", []byte(`{}`), "failed", 2, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "42", events[0].AggregateID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e2", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), "e1"))
	assert.NoError(t, repo.MarkFailed(context.Background(), "e2", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	e := validEvent()
	e.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(e))

	e = validEvent()
	e.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(e))

	e = validEvent()
	e.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(e), "invalid outbox status: queued")
}
