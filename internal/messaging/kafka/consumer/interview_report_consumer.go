package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hrdesk/internal/events"
	"go-hrdesk/internal/interview"
	interviewerrors "go-hrdesk/internal/interview/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeInterviewRecorded archives the scorecard PDF for every recorded interview.
func ConsumeInterviewRecorded(
	ctx context.Context,
	reader MessageReader,
	interviewService interview.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.interview_report")
	log.Info("interview report consumer started")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.InterviewRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: %v", errPoisonMessage, err)
		}
		if event.InterviewID <= 0 {
			return fmt.Errorf("%w: missing interview_id", errPoisonMessage)
		}

		resp, err := interviewService.ArchiveReport(ctx, event.InterviewID)
		if errors.Is(err, interviewerrors.ErrInterviewNotFound) {
			return fmt.Errorf("%w: %v", errPoisonMessage, err)
		}
		if err != nil {
			return err
		}

		log.Info("interview report archived",
			zap.Int64("interview_id", event.InterviewID),
			zap.String("request_id", event.RequestID),
			zap.Stringp("report_path", resp.ReportPath),
		)
		return nil
	})
}
