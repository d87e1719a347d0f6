package consumer

import (
	"context"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errPoisonMessage marks a message that can never be processed; it is
// committed so it does not block the partition.
var errPoisonMessage = errors.New("poison message")

// Delay before the first retry of a failing message, doubled per attempt.
var (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

type handleFunc func(ctx context.Context, msg kafkago.Message) error

// consume fetches until ctx is canceled. A message is committed once it is
// handled or found to be poison. Other failures are retried in place, so no
// later offset on the partition is committed past them.
func consume(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		err = handleWithRetry(ctx, msg, log, handle)
		switch {
		case err == nil:
		case errors.Is(err, errPoisonMessage):
			log.Warn("skipping undecodable message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		default:
			// Canceled mid-retry: the offset stays uncommitted and is
			// fetched again by the next consumer of the partition.
			log.Info("consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns nil, a poison error, or ctx's error.
func handleWithRetry(ctx context.Context, msg kafkago.Message, log *zap.Logger, handle handleFunc) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := handle(ctx, msg)
		if err == nil || errors.Is(err, errPoisonMessage) {
			return err
		}

		log.Error("handle message failed",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, retryMaxDelay)
	}
}
