package quota

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresGateAllow(t *testing.T) {
	tests := []struct {
		name       string
		underLimit bool
	}{
		{"under limit", true},
		{"over limit", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT check_daily_transcription_limit\(\$1\)`).
				WithArgs("user-1").
				WillReturnRows(sqlmock.NewRows([]string{"check_daily_transcription_limit"}).AddRow(tt.underLimit))

			allowed, err := NewPostgresGate(db).Allow(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.underLimit, allowed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresGateOracleFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT check_daily_transcription_limit\(\$1\)`).
		WithArgs("user-1").
		WillReturnError(errors.New("connection refused"))

	allowed, err := NewPostgresGate(db).Allow(context.Background(), "user-1")

	// oracle failure is an error, never a silent deny
	require.Error(t, err)
	assert.False(t, allowed)
	assert.Contains(t, err.Error(), "usage limit check failed")
}
