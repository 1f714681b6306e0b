package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"turboscribe/internal/app/model"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteDB implements repository.TranscriptionDAO for local development and
// the batch ingest CLI.
type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	sdb := &SQLiteDB{db: db}
	if err := sdb.init(); err != nil {
		db.Close()
		return nil, err
	}
	return sdb, nil
}

func (sdb *SQLiteDB) init() error {
	if _, err := sdb.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) InsertTranscription(ctx context.Context, t *model.Transcription) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	insertSQL := `INSERT INTO transcriptions (id, user_id, title, content, file_name, file_type, file_size, storage_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := sdb.db.ExecContext(ctx, insertSQL,
		t.ID, t.UserID, t.Title, t.Content, t.FileName, t.FileType, t.FileSize, t.StorageKey, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transcription failed: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAllByUser(ctx context.Context, userID string) ([]model.Transcription, error) {
	query := `
		SELECT id, user_id, title, content, file_name, file_type, file_size, COALESCE(storage_key, ''), created_at
		FROM transcriptions
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := sdb.db.QueryContext(ctx, query, userID)
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

func (sdb *SQLiteDB) CheckIfFileProcessed(ctx context.Context, userID, fileName string) (string, error) {
	query := `SELECT id FROM transcriptions WHERE user_id = ? AND file_name = ? LIMIT 1`
	var id string
	err := sdb.db.QueryRowContext(ctx, query, userID, fileName).Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) InsertUsageLog(ctx context.Context, l *model.UsageLog) error {
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
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := sdb.db.ExecContext(ctx, insertSQL,
		l.ID, l.UserID, l.TranscriptionID, l.ActionType, l.ResourceConsumed, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert usage log failed: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM transcriptions WHERE user_id = ?`

	stats := &model.UserStats{UserID: userID}
	err := sdb.db.QueryRowContext(ctx, query, userID).Scan(&stats.TotalTranscriptions, &stats.TotalBytes)
	if err != nil {
		return nil, fmt.Errorf("stats query failed: %w", err)
	}
	return stats, nil
}

func (sdb *SQLiteDB) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `SELECT user_id, subscription_tier, subscription_start, subscription_end FROM profiles WHERE user_id = ?`

	var p model.Profile
	err := sdb.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.SubscriptionTier, &p.SubscriptionStart, &p.SubscriptionEnd)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
