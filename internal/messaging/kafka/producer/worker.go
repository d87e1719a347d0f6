package producer

import (
	"context"
	"time"

	"go-hrdesk/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize           = 50
	defaultPollInterval = 3 * time.Second
)

// ProcessOutboxEvents drains the outbox once, then again on every tick of
// pollInterval until ctx is canceled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	log := logger.Named("kafka.producer.worker")
	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil && ctx.Err() == nil {
			log.Error("relay outbox batch failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessPendingEvents publishes one batch and returns how many rows were
// marked sent.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	batch, err := repo.ListPending(ctx, batchSize)
	if err != nil || len(batch) == 0 {
		return 0, err
	}
	logger.Info("relaying outbox batch", zap.Int("size", len(batch)))

	sent := 0
	for _, event := range batch {
		log := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
		if relay(ctx, repo, writer, event, log) {
			sent++
		}
	}
	return sent, nil
}

// relay publishes one event and records the outcome on its row.
func relay(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, event kafka.OutboxEvent, log *zap.Logger) bool {
	if err := publishEvent(ctx, writer, event); err != nil {
		log.Warn("publish outbox event failed", zap.Int("attempt", event.RetryCount+1), zap.Error(err))
		if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
			log.Error("record outbox failure", zap.Error(markErr))
		}
		return false
	}

	// A row left pending here is published again on the next pass.
	if err := repo.MarkSent(ctx, event.ID); err != nil {
		log.Error("record outbox delivery", zap.Error(err))
		return false
	}
	log.Debug("outbox event sent")
	return true
}
