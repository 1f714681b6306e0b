package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/api/v1/services"
	"turboscribe/internal/app/model"
	"turboscribe/internal/app/testutil"
)

func TestGetDashboardStatsWithProfile(t *testing.T) {
	dao := &testutil.MockTranscriptionDAO{}
	end := time.Now().Add(30 * 24 * time.Hour)
	dao.On("GetUserStats", mock.Anything, "user-1").Return(&model.UserStats{
		UserID: "user-1", TotalTranscriptions: 7, TotalBytes: 1 << 20,
	}, nil)
	dao.On("GetProfile", mock.Anything, "user-1").Return(&model.Profile{
		UserID: "user-1", SubscriptionTier: "pro", SubscriptionEnd: &end,
	}, nil)

	stats, err := services.NewStatsService(dao, discardLogger()).GetDashboardStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalTranscriptions)
	assert.Equal(t, int64(1<<20), stats.TotalBytes)
	assert.Equal(t, "pro", stats.SubscriptionTier)
	require.NotNil(t, stats.SubscriptionEnd)
}

func TestGetDashboardStatsNoProfileDefaultsToFree(t *testing.T) {
	dao := &testutil.MockTranscriptionDAO{}
	dao.On("GetUserStats", mock.Anything, "user-1").Return(&model.UserStats{UserID: "user-1"}, nil)
	dao.On("GetProfile", mock.Anything, "user-1").Return(nil, sql.ErrNoRows)

	stats, err := services.NewStatsService(dao, discardLogger()).GetDashboardStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "free", stats.SubscriptionTier)
	assert.Nil(t, stats.SubscriptionEnd)
}

func TestGetDashboardStatsRepositoryFailure(t *testing.T) {
	dao := &testutil.MockTranscriptionDAO{}
	dao.On("GetUserStats", mock.Anything, "user-1").Return(nil, errors.New("timeout"))

	_, err := services.NewStatsService(dao, discardLogger()).GetDashboardStats(context.Background(), "user-1")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindInternal, apiErr.Kind)
}
