package services

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/samber/lo"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/api/v1/dto"
	"turboscribe/internal/app/api"
	"turboscribe/internal/app/model"
	"turboscribe/internal/app/quota"
	"turboscribe/internal/app/repository"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	transcriber api.Transcriber
	repository  repository.TranscriptionDAO
	gate        quota.Gate
	storage     StorageService // nil when object storage is not configured
	logger      *slog.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	transcriber api.Transcriber,
	repo repository.TranscriptionDAO,
	gate quota.Gate,
	storage StorageService,
	logger *slog.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		transcriber: transcriber,
		repository:  repo,
		gate:        gate,
		storage:     storage,
		logger:      logger,
	}
}

// Transcribe runs the ingestion flow, terminal at the first failure. No
// retries anywhere; a transcription that succeeds but fails to persist is
// lost to the user.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, userID string, file *dto.UploadedFile) (*dto.TranscribeResponse, error) {
	underLimit, err := s.gate.Allow(ctx, userID)
	if err != nil {
		s.logger.Error("usage limit check failed", "error", err, "user_id", userID)
		return nil, apierrors.NewInternalError("Unable to verify usage limits")
	}
	if !underLimit {
		return nil, apierrors.NewQuotaExceededError("Daily transcription limit reached. Please upgrade your plan for unlimited transcriptions.")
	}

	// Best-effort retention of the original media. Never fails ingestion.
	var storageKey string
	if s.storage != nil {
		storageKey, err = s.storage.Upload(ctx, userID, file)
		if err != nil {
			s.logger.Warn("failed to store original media", "error", err, "user_id", userID, "file", file.Name)
			storageKey = ""
		}
	}

	text, err := s.transcriber.Transcribe(ctx, bytes.NewReader(file.Data), file.Name)
	if err != nil {
		s.logger.Error("transcription failed", "error", err, "user_id", userID, "file", file.Name)
		return nil, apierrors.NewTranscriptionFailedError("Failed to process transcription")
	}

	record := &model.Transcription{
		UserID:     userID,
		Title:      file.Name,
		Content:    text,
		FileName:   file.Name,
		FileType:   file.ContentType,
		FileSize:   file.Size,
		StorageKey: storageKey,
	}
	if err := s.repository.InsertTranscription(ctx, record); err != nil {
		s.logger.Error("failed to store transcription", "error", err, "user_id", userID)
		return nil, apierrors.NewPersistenceFailedError("Failed to store transcription")
	}

	// Usage accounting is best-effort: a failed insert is logged and the
	// response is unaffected.
	usageLog := &model.UsageLog{
		UserID:           userID,
		TranscriptionID:  record.ID,
		ActionType:       model.ActionTranscription,
		ResourceConsumed: int64(len(file.Data)),
	}
	if err := s.repository.InsertUsageLog(ctx, usageLog); err != nil {
		s.logger.Warn("failed to log usage", "error", err, "user_id", userID, "transcription_id", record.ID)
	}

	return &dto.TranscribeResponse{
		Success:       true,
		Transcription: text,
		ID:            record.ID,
	}, nil
}

// List returns the caller's transcriptions ordered by creation time
// descending. Full scan, no pagination.
func (s *TranscriptionServiceImpl) List(ctx context.Context, userID string) (*dto.ListTranscriptionsResponse, error) {
	transcriptions, err := s.repository.GetAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch transcriptions", "error", err, "user_id", userID)
		return nil, apierrors.NewInternalError("Failed to fetch transcriptions")
	}

	return &dto.ListTranscriptionsResponse{
		Data: lo.Map(transcriptions, func(t model.Transcription, _ int) dto.TranscriptionItem {
			return dto.ToTranscriptionItem(t)
		}),
	}, nil
}
