package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"turboscribe/internal/app/model"
)

// PostgresDB implements repository.TranscriptionDAO on top of the hosted
// Postgres instance that owns the transcriptions and usage_logs tables.
type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBWithConn wraps an existing connection. Used by tests and by
// components that share one pool (quota gate, web dashboard).
func NewPostgresDBWithConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) InsertTranscription(ctx context.Context, t *model.Transcription) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	insertSQL := `INSERT INTO transcriptions (id, user_id, title, content, file_name, file_type, file_size, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := pdb.db.ExecContext(ctx, insertSQL,
		t.ID, t.UserID, t.Title, t.Content, t.FileName, t.FileType, t.FileSize,
		nullString(t.StorageKey), t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transcription failed: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAllByUser(ctx context.Context, userID string) ([]model.Transcription, error) {
	query := `
		SELECT id, user_id, title, content, file_name, file_type, file_size, COALESCE(storage_key, ''), created_at
		FROM transcriptions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := pdb.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Content, &t.FileName, &t.FileType, &t.FileSize, &t.StorageKey, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcriptions = append(transcriptions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return transcriptions, nil
}

func (pdb *PostgresDB) CheckIfFileProcessed(ctx context.Context, userID, fileName string) (string, error) {
	query := `SELECT id FROM transcriptions WHERE user_id = $1 AND file_name = $2 LIMIT 1`
	var id string
	err := pdb.db.QueryRowContext(ctx, query, userID, fileName).Scan(&id)
	return id, err
}

func (pdb *PostgresDB) InsertUsageLog(ctx context.Context, l *model.UsageLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.ActionType == "" {
		l.ActionType = model.ActionTranscription
	}

	insertSQL := `INSERT INTO usage_logs (id, user_id, transcription_id, action_type, resource_consumed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := pdb.db.ExecContext(ctx, insertSQL,
		l.ID, l.UserID, l.TranscriptionID, l.ActionType, l.ResourceConsumed, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert usage log failed: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM transcriptions WHERE user_id = $1`

	stats := &model.UserStats{UserID: userID}
	err := pdb.db.QueryRowContext(ctx, query, userID).Scan(&stats.TotalTranscriptions, &stats.TotalBytes)
	if err != nil {
		return nil, fmt.Errorf("stats query failed: %w", err)
	}
	return stats, nil
}

func (pdb *PostgresDB) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `SELECT user_id, subscription_tier, subscription_start, subscription_end FROM profiles WHERE user_id = $1`

	var p model.Profile
	err := pdb.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.SubscriptionTier, &p.SubscriptionStart, &p.SubscriptionEnd)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
