package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"turboscribe/internal/app/model"
)

// MockTranscriptionDAO is a testify mock for repository.TranscriptionDAO
type MockTranscriptionDAO struct {
	mock.Mock
}

func (m *MockTranscriptionDAO) Close() error {
	return m.Called().Error(0)
}

func (m *MockTranscriptionDAO) InsertTranscription(ctx context.Context, t *model.Transcription) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTranscriptionDAO) GetAllByUser(ctx context.Context, userID string) ([]model.Transcription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcription), args.Error(1)
}

func (m *MockTranscriptionDAO) CheckIfFileProcessed(ctx context.Context, userID, fileName string) (string, error) {
	args := m.Called(ctx, userID, fileName)
	return args.String(0), args.Error(1)
}

func (m *MockTranscriptionDAO) InsertUsageLog(ctx context.Context, l *model.UsageLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockTranscriptionDAO) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserStats), args.Error(1)
}

func (m *MockTranscriptionDAO) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
