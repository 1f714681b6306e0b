package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"turboscribe/internal/app/api"
	"turboscribe/internal/app/media"
	"turboscribe/internal/app/model"
	"turboscribe/internal/app/repository"
	"turboscribe/internal/app/util/files"
)

// Converter batch-transcribes a local directory of media files on behalf of
// one user. Operator tool: runs against the local database and skips the
// daily quota gate.
type Converter struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
	progress    *ProgressManager
	logger      *slog.Logger
}

func NewConverter(transcriber api.Transcriber, dao repository.TranscriptionDAO, logger *slog.Logger) *Converter {
	return &Converter{
		transcriber: transcriber,
		db:          dao,
		progress:    NewProgressManager(ProgressConfig{Enabled: true}),
		logger:      logger,
	}
}

func (c *Converter) Close() error {
	return c.db.Close()
}

// Do ingests up to maxCount unprocessed media files from inputDir. A file
// that fails stops the run; already-ingested file names are skipped.
func (c *Converter) Do(ctx context.Context, userID, inputDir string, maxCount int) error {
	fileInfos, err := files.ListMediaFiles(inputDir)
	if err != nil {
		return err
	}

	toProcess := c.filterUnprocessedFiles(ctx, userID, fileInfos, maxCount)
	if len(toProcess) == 0 {
		c.logger.Info("no unprocessed media files found", "dir", inputDir)
		return nil
	}

	bar := c.progress.CreateBar(len(toProcess), "transcribing")
	for _, file := range toProcess {
		if err := c.ingestFile(ctx, userID, file); err != nil {
			return err
		}
		bar.Increment()
	}
	c.progress.Wait()

	return nil
}

func (c *Converter) filterUnprocessedFiles(ctx context.Context, userID string, fileInfos []files.FileInfo, maxCount int) []files.FileInfo {
	toProcess := make([]files.FileInfo, 0, maxCount)

	for _, fileInfo := range fileInfos {
		id, err := c.db.CheckIfFileProcessed(ctx, userID, fileInfo.Name)
		if err == nil {
			c.logger.Info("file already processed, skipping", "file", fileInfo.Name, "id", id)
			continue
		}

		toProcess = append(toProcess, fileInfo)
		if len(toProcess) >= maxCount {
			break
		}
	}
	return toProcess
}

func (c *Converter) ingestFile(ctx context.Context, userID string, file files.FileInfo) error {
	f, err := os.Open(file.FullPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file.FullPath, err)
	}
	defer f.Close()

	text, err := c.transcriber.Transcribe(ctx, f, file.Name)
	if err != nil {
		return fmt.Errorf("transcription failed for %s: %w", file.Name, err)
	}

	record := &model.Transcription{
		UserID:   userID,
		Title:    file.Name,
		Content:  text,
		FileName: file.Name,
		FileType: media.ContentType(file.Name),
		FileSize: file.Size,
	}
	if err := c.db.InsertTranscription(ctx, record); err != nil {
		return fmt.Errorf("failed to store transcription for %s: %w", file.Name, err)
	}

	usageLog := &model.UsageLog{
		UserID:           userID,
		TranscriptionID:  record.ID,
		ActionType:       model.ActionTranscription,
		ResourceConsumed: file.Size,
	}
	if err := c.db.InsertUsageLog(ctx, usageLog); err != nil {
		c.logger.Warn("failed to log usage", "error", err, "file", file.Name)
	}

	return nil
}
