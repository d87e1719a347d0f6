package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrdesk/internal/events"
	"go-hrdesk/internal/interview"
	interviewmock "go-hrdesk/internal/interview/mock"
	"go-hrdesk/internal/messaging/kafka/consumer"
	"go-hrdesk/internal/payroll"
	payrollerrors "go-hrdesk/internal/payroll/errors"
	payrollmock "go-hrdesk/internal/payroll/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs chan kafkago.Message

	mu        sync.Mutex
	committed []int64
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	ch := make(chan kafkago.Message, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	return &fakeReader{msgs: ch}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	select {
	case <-ctx.Done():
		return kafkago.Message{}, ctx.Err()
	case m := <-r.msgs:
		return m, nil
	}
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Committed() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return kafkago.Message{Topic: "test", Offset: offset, Value: b}
}

func run(t *testing.T, fn func(ctx context.Context)) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(ctx)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("consumer did not stop")
		}
	}
}

func TestConsumePayrollRecorded(t *testing.T) {
	defer goleak.VerifyNone(t)
	consumer.SetRetryDelay(t, time.Millisecond)

	ctrl := gomock.NewController(t)
	svc := payrollmock.NewMockService(ctrl)
	path := "/tmp/42_payslip_A_2024-03.pdf"

	gomock.InOrder(
		svc.EXPECT().GeneratePayslip(gomock.Any(), int64(42)).
			Return(payroll.PayrollResponse{ID: 42, PayslipPath: &path}, nil),
		svc.EXPECT().GeneratePayslip(gomock.Any(), int64(43)).
			Return(payroll.PayrollResponse{}, errors.New("db down")),
		svc.EXPECT().GeneratePayslip(gomock.Any(), int64(43)).
			Return(payroll.PayrollResponse{ID: 43}, nil),
		svc.EXPECT().GeneratePayslip(gomock.Any(), int64(44)).
			Return(payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound),
	)

	reader := newFakeReader(
		message(t, 1, events.PayrollRecordedEvent{PayrollID: 42}),
		kafkago.Message{Topic: "test", Offset: 2, Value: []byte("{not json")},
		message(t, 3, events.PayrollRecordedEvent{}),
		message(t, 4, events.PayrollRecordedEvent{PayrollID: 43}),
		message(t, 5, events.PayrollRecordedEvent{PayrollID: 44}),
	)

	stop := run(t, func(ctx context.Context) {
		consumer.ConsumePayrollRecorded(ctx, reader, svc, zap.NewNop())
	})

	assert.Eventually(t, func() bool {
		return len(reader.Committed()) == 5
	}, time.Second, 10*time.Millisecond)
	stop()

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, reader.Committed())
}

func TestConsume_RetriesBeforeCommittingLaterOffsets(t *testing.T) {
	defer goleak.VerifyNone(t)
	consumer.SetRetryDelay(t, time.Millisecond)

	ctrl := gomock.NewController(t)
	svc := interviewmock.NewMockService(ctrl)
	reader := newFakeReader(
		message(t, 10, events.InterviewRecordedEvent{InterviewID: 1}),
		message(t, 11, events.InterviewRecordedEvent{InterviewID: 2}),
	)

	gomock.InOrder(
		svc.EXPECT().ArchiveReport(gomock.Any(), int64(1)).
			Return(interview.InterviewResponse{}, errors.New("disk full")),
		svc.EXPECT().ArchiveReport(gomock.Any(), int64(1)).
			DoAndReturn(func(ctx context.Context, id int64) (interview.InterviewResponse, error) {
				assert.Empty(t, reader.Committed())
				return interview.InterviewResponse{ID: 1}, nil
			}),
		svc.EXPECT().ArchiveReport(gomock.Any(), int64(2)).
			Return(interview.InterviewResponse{ID: 2}, nil),
	)

	stop := run(t, func(ctx context.Context) {
		consumer.ConsumeInterviewRecorded(ctx, reader, svc, zap.NewNop())
	})

	assert.Eventually(t, func() bool {
		return len(reader.Committed()) == 2
	}, time.Second, 10*time.Millisecond)
	stop()

	assert.Equal(t, []int64{10, 11}, reader.Committed())
}

func TestConsume_CancelWhileRetryingLeavesOffsetUncommitted(t *testing.T) {
	defer goleak.VerifyNone(t)
	consumer.SetRetryDelay(t, time.Millisecond)

	ctrl := gomock.NewController(t)
	svc := payrollmock.NewMockService(ctrl)
	attempts := make(chan struct{}, 100)
	svc.EXPECT().GeneratePayslip(gomock.Any(), int64(9)).
		DoAndReturn(func(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
			select {
			case attempts <- struct{}{}:
			default:
			}
			return payroll.PayrollResponse{}, errors.New("db down")
		}).
		MinTimes(2)

	reader := newFakeReader(message(t, 20, events.PayrollRecordedEvent{PayrollID: 9}))
	stop := run(t, func(ctx context.Context) {
		consumer.ConsumePayrollRecorded(ctx, reader, svc, zap.NewNop())
	})

	assert.Eventually(t, func() bool {
		return len(attempts) >= 2
	}, time.Second, 5*time.Millisecond)
	stop()

	assert.Empty(t, reader.Committed())
}

func TestConsumeInterviewRecorded(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	svc := interviewmock.NewMockService(ctrl)
	path := "/tmp/11_Asha_interview.pdf"

	svc.EXPECT().ArchiveReport(gomock.Any(), int64(11)).
		Return(interview.InterviewResponse{ID: 11, ReportPath: &path}, nil)

	reader := newFakeReader(
		message(t, 7, events.InterviewRecordedEvent{InterviewID: 11, RequestID: "req-1"}),
		message(t, 8, events.InterviewRecordedEvent{InterviewID: -1}),
	)

	stop := run(t, func(ctx context.Context) {
		consumer.ConsumeInterviewRecorded(ctx, reader, svc, zap.NewNop())
	})

	assert.Eventually(t, func() bool {
		return len(reader.Committed()) == 2
	}, time.Second, 10*time.Millisecond)
	stop()

	assert.Equal(t, []int64{7, 8}, reader.Committed())
}
