package model

import "time"

// ActionTranscription is the only billable action type today.
const ActionTranscription = "transcription"

// UsageLog records one billable action. Rows are written best-effort after
// the transcription has been stored.
type UsageLog struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	TranscriptionID  string    `json:"transcription_id" db:"transcription_id"`
	ActionType       string    `json:"action_type" db:"action_type"`
	ResourceConsumed int64     `json:"resource_consumed" db:"resource_consumed"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
