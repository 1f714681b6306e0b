package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"turboscribe/internal/api/v1/dto"
)

// MockTranscriptionService is a testify mock for services.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, userID string, file *dto.UploadedFile) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscribeResponse), args.Error(1)
}

func (m *MockTranscriptionService) List(ctx context.Context, userID string) (*dto.ListTranscriptionsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTranscriptionsResponse), args.Error(1)
}

// MockStatsService is a testify mock for services.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetDashboardStats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardStats), args.Error(1)
}

// MockExportService is a testify mock for services.ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTranscriptions(ctx context.Context, userID string, w io.Writer) error {
	return m.Called(ctx, userID, w).Error(0)
}

// MockStorageService is a testify mock for services.StorageService
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, userID string, file *dto.UploadedFile) (string, error) {
	args := m.Called(ctx, userID, file)
	return args.String(0), args.Error(1)
}

// MockServices bundles the service mocks used by handler tests.
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	StatsService         *MockStatsService
	ExportService        *MockExportService
}

// NewMockServices creates the bundle and registers expectation assertions.
func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		TranscriptionService: &MockTranscriptionService{},
		StatsService:         &MockStatsService{},
		ExportService:        &MockExportService{},
	}
	t.Cleanup(func() {
		ms.TranscriptionService.AssertExpectations(t)
		ms.StatsService.AssertExpectations(t)
		ms.ExportService.AssertExpectations(t)
	})
	return ms
}
