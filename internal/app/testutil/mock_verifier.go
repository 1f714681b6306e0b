package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"turboscribe/internal/app/auth"
)

// MockSessionVerifier is a testify mock for auth.SessionVerifier
type MockSessionVerifier struct {
	mock.Mock
}

func (m *MockSessionVerifier) Verify(ctx context.Context, token string) (*auth.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}
