// Package contextutil carries request metadata (request id, signed-in actor,
// scoped logger) on a context.Context.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	actorKey
	loggerKey
)

// Actor is the HR user a request runs as.
type Actor struct {
	UserID int64
	Email  string
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor reports false for unauthenticated contexts such as the Kafka
// consumers.
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, then defaultLogger, then a no-op logger.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

type Metadata struct {
	RequestID string
	Actor     Actor
}

// Fields renders the metadata as zap fields, skipping what is unset.
func (m Metadata) Fields() []zap.Field {
	var fields []zap.Field
	if m.RequestID != "" {
		fields = append(fields, zap.String("request_id", m.RequestID))
	}
	if m.Actor.UserID != 0 {
		fields = append(fields, zap.Int64("actor_id", m.Actor.UserID), zap.String("actor_email", m.Actor.Email))
	}
	return fields
}

func ExtractMetadata(ctx context.Context) Metadata {
	actor, _ := GetActor(ctx)
	return Metadata{
		RequestID: GetRequestID(ctx),
		Actor:     actor,
	}
}
