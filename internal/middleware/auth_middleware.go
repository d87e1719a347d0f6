package middleware

import (
	"net/http"
	"strings"

	"go-hrdesk/internal/session"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys set on the gin context by AuthMiddleware.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserName  = "user_name"
	CtxRole      = "role"
	CtxSessionID = "session_id"
)

const AccessTokenCookie = "access_token"

var ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "token not found", http.StatusUnauthorized)

// AuthMiddleware accepts a Bearer token or the access_token cookie and
// requires the session it names to still exist.
func AuthMiddleware(secret string, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.FromError(c, ErrTokenNotFound)
			c.Abort()
			return
		}

		claims, err := session.ParseToken(secret, tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		identity, err := sessions.Get(ctx, claims.SessionID)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(CtxUserID, identity.UserID)
		c.Set(CtxUserEmail, identity.Email)
		c.Set(CtxUserName, identity.Name)
		c.Set(CtxRole, identity.Role)
		c.Set(CtxSessionID, claims.SessionID)

		logger := contextutil.GetLogger(ctx, nil).With(zap.Int64("user_id", identity.UserID))
		ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: identity.UserID, Email: identity.Email})
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActorEmail is the email of the authenticated caller, used as the
// recorded_by / uploaded_by value.
func ActorEmail(c *gin.Context) string {
	return c.GetString(CtxUserEmail)
}
