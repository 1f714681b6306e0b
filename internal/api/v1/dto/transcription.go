package dto

import (
	"time"

	"turboscribe/internal/app/model"
)

// UploadedFile is a fully-read multipart upload handed from the handler to
// the ingestion service.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// TranscribeResponse is the success payload of POST /api/transcribe.
type TranscribeResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	ID            string `json:"id"`
}

// TranscriptionItem represents one transcription in listing responses.
type TranscriptionItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTranscriptionsResponse is the payload of GET /api/transcriptions,
// ordered newest first.
type ListTranscriptionsResponse struct {
	Data []TranscriptionItem `json:"data"`
}

// ToTranscriptionItem converts a model to its listing representation.
func ToTranscriptionItem(t model.Transcription) TranscriptionItem {
	return TranscriptionItem{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		FileName:  t.FileName,
		FileType:  t.FileType,
		FileSize:  t.FileSize,
		CreatedAt: t.CreatedAt,
	}
}
