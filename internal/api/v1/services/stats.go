package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/api/v1/dto"
	"turboscribe/internal/app/repository"
)

// StatsServiceImpl implements StatsService
type StatsServiceImpl struct {
	repo   repository.TranscriptionDAO
	logger *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(repo repository.TranscriptionDAO, logger *slog.Logger) StatsService {
	return &StatsServiceImpl{repo: repo, logger: logger}
}

// GetDashboardStats returns the caller's usage totals and subscription tier.
// Users without a profile row are treated as free tier.
func (s *StatsServiceImpl) GetDashboardStats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch user stats", "error", err, "user_id", userID)
		return nil, apierrors.NewInternalError("Failed to fetch stats")
	}

	result := &dto.DashboardStats{
		TotalTranscriptions: stats.TotalTranscriptions,
		TotalBytes:          stats.TotalBytes,
		SubscriptionTier:    "free",
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	switch {
	case err == nil:
		result.SubscriptionTier = profile.SubscriptionTier
		result.SubscriptionEnd = profile.SubscriptionEnd
	case errors.Is(err, sql.ErrNoRows):
		// no profile row yet, keep defaults
	default:
		s.logger.Error("failed to fetch profile", "error", err, "user_id", userID)
		return nil, apierrors.NewInternalError("Failed to fetch stats")
	}

	return result, nil
}
