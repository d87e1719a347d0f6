package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-hrdesk/internal/config"
	"go-hrdesk/internal/events"
	"go-hrdesk/internal/interview"
	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/messaging/kafka/consumer"
	"go-hrdesk/internal/payroll"
	"go-hrdesk/internal/shared/connection"
	"go-hrdesk/internal/shared/storage"

	"go.uber.org/zap"
)

const (
	payslipGroupID   = "hrdesk-payslip"
	interviewGroupID = "hrdesk-interview-report"
)

// RunConsumer renders and archives the PDFs for recorded payrolls and
// interviews until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	payrollService := payroll.NewService(
		sqlDB, payroll.NewRepository(gormDB), outboxRepo, storage.NewLocalStore(cfg.PayslipDir), logger,
	)
	interviewService := interview.NewService(
		sqlDB, interview.NewRepository(gormDB), outboxRepo, storage.NewLocalStore(cfg.ReportDir), logger,
	)

	payslipReader := connection.NewKafkaReader(cfg.KafkaBroker, payslipGroupID, events.PayrollRecordedTopic)
	defer payslipReader.Close()
	interviewReader := connection.NewKafkaReader(cfg.KafkaBroker, interviewGroupID, events.InterviewRecordedTopic)
	defer interviewReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumePayrollRecorded(ctx, payslipReader, payrollService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeInterviewRecorded(ctx, interviewReader, interviewService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
