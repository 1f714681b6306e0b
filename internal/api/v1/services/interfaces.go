package services

import (
	"context"
	"io"

	"turboscribe/internal/api/v1/dto"
)

// TranscriptionService defines the ingestion and listing operations.
type TranscriptionService interface {
	// Transcribe runs the full ingestion flow for one upload: quota check,
	// provider call, persistence, best-effort usage log.
	Transcribe(ctx context.Context, userID string, file *dto.UploadedFile) (*dto.TranscribeResponse, error)

	// List returns the caller's transcriptions, newest first.
	List(ctx context.Context, userID string) (*dto.ListTranscriptionsResponse, error)
}

// StatsService defines the dashboard summary operation.
type StatsService interface {
	GetDashboardStats(ctx context.Context, userID string) (*dto.DashboardStats, error)
}

// ExportService streams a user's transcriptions as a spreadsheet.
type ExportService interface {
	ExportTranscriptions(ctx context.Context, userID string, w io.Writer) error
}

// StorageService retains original uploads in object storage. Optional;
// ingestion treats it as best-effort.
type StorageService interface {
	Upload(ctx context.Context, userID string, file *dto.UploadedFile) (key string, err error)
}
