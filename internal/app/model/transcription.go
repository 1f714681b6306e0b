package model

import "time"

// Transcription is one stored transcription owned by a single user.
// StorageKey is empty when the original upload was not retained.
type Transcription struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	FileName   string    `json:"file_name" db:"file_name"`
	FileType   string    `json:"file_type" db:"file_type"`
	FileSize   int64     `json:"file_size" db:"file_size"`
	StorageKey string    `json:"storage_key,omitempty" db:"storage_key"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
