package repository

import (
	"context"

	"turboscribe/internal/app/model"
)

// TranscriptionDAO is the persistence boundary for transcriptions, usage
// logs and the read-only profile data the dashboard displays.
//
// InsertTranscription and InsertUsageLog are two independent writes: there
// is no transaction spanning them. A usage log that fails to insert leaves
// the transcription row in place.
type TranscriptionDAO interface {
	Close() error

	// InsertTranscription assigns the record's ID and CreatedAt and writes it.
	InsertTranscription(ctx context.Context, t *model.Transcription) error

	// GetAllByUser returns every transcription owned by userID, newest first.
	GetAllByUser(ctx context.Context, userID string) ([]model.Transcription, error)

	// CheckIfFileProcessed returns the id of an existing record for fileName
	// owned by userID, or sql.ErrNoRows. Used by the batch ingest CLI to skip
	// files it already handled.
	CheckIfFileProcessed(ctx context.Context, userID, fileName string) (string, error)

	InsertUsageLog(ctx context.Context, l *model.UsageLog) error

	GetUserStats(ctx context.Context, userID string) (*model.UserStats, error)

	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
}
