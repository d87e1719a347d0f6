package contextutil_test

import (
	"context"
	"testing"

	"go-hrdesk/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: 7, Email: "hr@example.com"})

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, int64(7), md.Actor.UserID)
	assert.Len(t, md.Fields(), 3)
}

func TestMetadata_Anonymous(t *testing.T) {
	_, ok := contextutil.GetActor(context.Background())
	assert.False(t, ok)

	md := contextutil.ExtractMetadata(context.Background())
	assert.Empty(t, md.Fields())
}

func TestGetLogger_Fallbacks(t *testing.T) {
	def := zap.NewExample()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
