package producer_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type fakeOutbox struct {
	mu      sync.Mutex
	pending []kafka.OutboxEvent
	listErr error
	sent    []string
	failed  map[string]string
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, e kafka.OutboxEvent) error { return nil }

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := f.pending
	f.pending = nil
	return out, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafkago.Message
	failKey  string
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, m := range msgs {
		if string(m.Key) == w.failKey {
			return errors.New("leader not available")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	repo := &fakeOutbox{pending: []kafka.OutboxEvent{
		{ID: "e1", RequestID: "rid-1", AggregateType: "payroll", AggregateID: "42", EventType: "payroll_recorded", Topic: "hr.payroll.recorded.v1", Payload: []byte(`{"payroll_id":42}`)},
		{ID: "e2", AggregateType: "interview", AggregateID: "7", EventType: "interview_recorded", Topic: "hr.interview.recorded.v1", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failKey: "7"}

	sent, err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"e1"}, repo.sent)
	assert.Equal(t, "leader not available", repo.failed["e2"])

	if assert.Len(t, writer.messages, 1) {
		msg := writer.messages[0]
		assert.Equal(t, "hr.payroll.recorded.v1", msg.Topic)
		assert.Equal(t, "42", string(msg.Key))
		assert.Len(t, msg.Headers, 3)
		assert.Equal(t, "request_id", msg.Headers[2].Key)
	}
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	repo := &fakeOutbox{listErr: errors.New("db down")}

	sent, err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	assert.EqualError(t, err, "db down")
	assert.Zero(t, sent)
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeOutbox{pending: []kafka.OutboxEvent{
		{ID: "e1", AggregateID: "1", Topic: "hr.payroll.recorded.v1", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, writer, zap.NewNop(), 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.sent) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
