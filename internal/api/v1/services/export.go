package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tealeg/xlsx"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/app/repository"
)

// ExportServiceImpl implements ExportService
type ExportServiceImpl struct {
	repo   repository.TranscriptionDAO
	logger *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(repo repository.TranscriptionDAO, logger *slog.Logger) ExportService {
	return &ExportServiceImpl{repo: repo, logger: logger}
}

// ExportTranscriptions writes the caller's transcriptions as an xlsx
// workbook, one row per record plus a header row.
func (s *ExportServiceImpl) ExportTranscriptions(ctx context.Context, userID string, w io.Writer) error {
	transcriptions, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch transcriptions for export", "error", err, "user_id", userID)
		return apierrors.NewInternalError("Failed to export transcriptions")
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return apierrors.NewInternalError("Failed to export transcriptions")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "File Type"
	headerRow.AddCell().Value = "File Size"
	headerRow.AddCell().Value = "Transcription"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = t.ID
		row.AddCell().Value = t.Title
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.FileType
		row.AddCell().Value = fmt.Sprint(t.FileSize)
		row.AddCell().Value = t.Content
	}

	if err := file.Write(w); err != nil {
		s.logger.Error("failed to write export", "error", err, "user_id", userID)
		return apierrors.NewInternalError("Failed to export transcriptions")
	}
	return nil
}
