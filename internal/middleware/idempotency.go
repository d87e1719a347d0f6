package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL  = 30 * time.Second
	IdempotencyCacheTTL = 24 * time.Hour
)

type idempotentResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the cached response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first one is still running.
// Handlers release the lock and fill the cache through the keys it sets.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L())

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), ActorEmail(c), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached idempotentResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil && cached.Status != 0 {
				log.Debug("idempotent replay", zap.String("key", idempKey), zap.Int("status", cached.Status))
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, cached.Status, cached.Data, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"a request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// ReleaseIdempotency drops the lock set by Idempotency.
func ReleaseIdempotency(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		rdb.Del(c.Request.Context(), lk)
	}
}

// CacheIdempotentResponse stores status and resp so a retry with the same key
// replays both.
func CacheIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, resp any) {
	if rdb == nil {
		return
	}
	ck := c.GetString(IdempotencyCacheKey)
	if ck == "" {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	payload, err := json.Marshal(idempotentResponse{Status: status, Data: data})
	if err != nil {
		return
	}
	if err := rdb.Set(c.Request.Context(), ck, payload, IdempotencyCacheTTL).Err(); err != nil {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Warn("idempotency cache write failed", zap.Error(err))
	}
}
