package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockQuotaGate is a testify mock for quota.Gate
type MockQuotaGate struct {
	mock.Mock
}

func (m *MockQuotaGate) Allow(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
