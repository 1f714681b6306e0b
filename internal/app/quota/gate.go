package quota

import (
	"context"
	"database/sql"
	"fmt"
)

// Gate answers whether a user may perform one more transcription today.
//
// The boolean result and the error are independent signals: an error means
// the oracle itself could not be consulted, not that the user is over limit.
// Callers map the two to different HTTP outcomes.
type Gate interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

// PostgresGate asks the check_daily_transcription_limit stored procedure.
// The procedure is the sole source of truth; two concurrent requests from
// the same user can both pass, which is an accepted race.
type PostgresGate struct {
	db *sql.DB
}

func NewPostgresGate(db *sql.DB) *PostgresGate {
	return &PostgresGate{db: db}
}

func (g *PostgresGate) Allow(ctx context.Context, userID string) (bool, error) {
	var underLimit bool
	err := g.db.QueryRowContext(ctx, `SELECT check_daily_transcription_limit($1)`, userID).Scan(&underLimit)
	if err != nil {
		return false, fmt.Errorf("usage limit check failed: %w", err)
	}
	return underLimit, nil
}
