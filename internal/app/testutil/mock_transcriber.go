package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock for api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, r io.Reader, fileName string) (string, error) {
	args := m.Called(ctx, r, fileName)
	return args.String(0), args.Error(1)
}
