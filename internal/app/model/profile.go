package model

import "time"

// Profile holds a user's subscription state. Users without a profile row are
// treated as free tier.
type Profile struct {
	UserID            string     `json:"user_id" db:"user_id"`
	SubscriptionTier  string     `json:"subscription_tier" db:"subscription_tier"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty" db:"subscription_start"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty" db:"subscription_end"`
}

// UserStats aggregates a user's stored transcriptions.
type UserStats struct {
	UserID              string `json:"user_id"`
	TotalTranscriptions int    `json:"total_transcriptions"`
	TotalBytes          int64  `json:"total_bytes"`
}
