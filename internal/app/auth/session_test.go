package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	sessions map[string]map[string]string
	err      error
}

func (f *fakeStore) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	if f.err != nil {
		return redis.NewMapStringStringResult(nil, f.err)
	}
	return redis.NewMapStringStringResult(f.sessions[key], nil)
}

func futureExpiry() string {
	return fmt.Sprint(time.Now().Add(time.Hour).Unix())
}

func TestVerifyValidSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]map[string]string{
		"session:tok-1": {"user_id": "user-1", "expires_at": futureExpiry()},
	}}

	sess, err := NewRedisVerifier(store).Verify(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
}

func TestVerifyMissingSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]map[string]string{}}

	_, err := NewRedisVerifier(store).Verify(context.Background(), "tok-unknown")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyEmptyToken(t *testing.T) {
	store := &fakeStore{sessions: map[string]map[string]string{}}

	_, err := NewRedisVerifier(store).Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyExpiredSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]map[string]string{
		"session:tok-old": {
			"user_id":    "user-1",
			"expires_at": fmt.Sprint(time.Now().Add(-time.Minute).Unix()),
		},
	}}

	_, err := NewRedisVerifier(store).Verify(context.Background(), "tok-old")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifySessionWithoutUserID(t *testing.T) {
	store := &fakeStore{sessions: map[string]map[string]string{
		"session:tok-bad": {"expires_at": futureExpiry()},
	}}

	_, err := NewRedisVerifier(store).Verify(context.Background(), "tok-bad")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}

	_, err := NewRedisVerifier(store).Verify(context.Background(), "tok-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
	assert.Contains(t, err.Error(), "session lookup failed")
}
