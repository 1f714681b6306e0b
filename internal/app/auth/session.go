package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token resolves to no live session. It is
// distinct from transport failures: a missing session is 401 material, an
// unreachable session store is 503 material.
var ErrNoSession = errors.New("no session")

// Session is the caller identity bundle. Sessions are created and refreshed
// by the auth tier; this service only reads them.
type Session struct {
	UserID string
}

// SessionVerifier resolves an opaque bearer token to a session.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// sessionStore is the slice of the redis client the verifier needs.
type sessionStore interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisVerifier reads session:<token> hashes with user_id and expires_at
// (unix seconds) fields.
type RedisVerifier struct {
	store sessionStore
}

func NewRedisVerifier(store sessionStore) *RedisVerifier {
	return &RedisVerifier{store: store}
}

func (v *RedisVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	vals, err := v.store.HGetAll(ctx, "session:"+token).Result()
	if err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrNoSession
	}

	userID := vals["user_id"]
	if userID == "" {
		return nil, ErrNoSession
	}

	if exp := vals["expires_at"]; exp != "" {
		sec, err := strconv.ParseInt(exp, 10, 64)
		if err != nil || !time.Now().Before(time.Unix(sec, 0)) {
			return nil, ErrNoSession
		}
	}

	return &Session{UserID: userID}, nil
}

// NewRedisClient connects to the session store using REDIS_ADDR,
// REDIS_PASSWORD and REDIS_DB.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			db = n
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
