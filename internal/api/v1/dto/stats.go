package dto

import "time"

// DashboardStats feeds the dashboard summary cards.
type DashboardStats struct {
	TotalTranscriptions int        `json:"total_transcriptions"`
	TotalBytes          int64      `json:"total_bytes"`
	SubscriptionTier    string     `json:"subscription_tier"`
	SubscriptionEnd     *time.Time `json:"subscription_end,omitempty"`
}
