package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hrdesk/internal/events"
	"go-hrdesk/internal/payroll"
	payrollerrors "go-hrdesk/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollRecorded archives a payslip PDF for every recorded payroll.
func ConsumePayrollRecorded(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: %v", errPoisonMessage, err)
		}
		if event.PayrollID <= 0 {
			return fmt.Errorf("%w: missing payroll_id", errPoisonMessage)
		}

		resp, err := payrollService.GeneratePayslip(ctx, event.PayrollID)
		if errors.Is(err, payrollerrors.ErrPayrollNotFound) {
			return fmt.Errorf("%w: %v", errPoisonMessage, err)
		}
		if err != nil {
			return err
		}

		log.Info("payroll payslip generated",
			zap.Int64("payroll_id", event.PayrollID),
			zap.String("request_id", event.RequestID),
			zap.Stringp("payslip_path", resp.PayslipPath),
		)
		return nil
	})
}
