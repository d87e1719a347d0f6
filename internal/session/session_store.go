package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-hrdesk/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var ErrSessionNotFound = apperror.New(
	apperror.CodeUnauthorized,
	"session expired or signed out",
	http.StatusUnauthorized,
)

// Identity is what a logged-in HR session resolves to.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	Create(ctx context.Context, identity Identity) (string, error)
	Get(ctx context.Context, sessionID string) (Identity, error)
	Delete(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

type redisStore struct {
	rdb   *redis.Client
	ttl   time.Duration
	newID func() string
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{
		rdb:   rdb,
		ttl:   ttl,
		newID: func() string { return uuid.New().String() },
	}
}

func Key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *redisStore) TTL() time.Duration {
	return s.ttl
}

func (s *redisStore) Create(ctx context.Context, identity Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	id := s.newID()
	if err := s.rdb.Set(ctx, Key(id), string(payload), s.ttl).Err(); err != nil {
		return "", apperror.Wrap(err, apperror.CodeServiceUnavailable, "session store unavailable", http.StatusServiceUnavailable)
	}
	return id, nil
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (Identity, error) {
	if sessionID == "" {
		return Identity{}, ErrSessionNotFound
	}

	val, err := s.rdb.Get(ctx, Key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return Identity{}, ErrSessionNotFound
	}
	if err != nil {
		return Identity{}, apperror.Wrap(err, apperror.CodeServiceUnavailable, "session store unavailable", http.StatusServiceUnavailable)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return Identity{}, ErrSessionNotFound
	}
	return identity, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.rdb.Del(ctx, Key(sessionID)).Err()
}
