package middleware

import (
	"time"

	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// ContextLogger stamps every request with an id, puts a scoped logger on the
// request context and writes one access line when the handler chain returns.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(HeaderRequestID, rid)
		c.Set("request_id", rid)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("client", request.ResolveClientType(c.GetHeader("X-Client-Type"), c.Request.UserAgent())),
		)

		ctx := contextutil.WithLogger(contextutil.WithRequestID(c.Request.Context(), rid), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// Auth may have replaced the logger with one carrying user_id.
		access := contextutil.GetLogger(c.Request.Context(), reqLogger).With(
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
		if c.Writer.Status() >= 500 {
			access.Error("request failed", zap.Strings("errors", c.Errors.Errors()))
			return
		}
		access.Info("request served")
	}
}
