package migrate

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema_postgres.sql
var postgresSchema string

// Run applies the Postgres schema. Every statement is idempotent, so running
// it against an existing database is safe.
func Run(db *sql.DB) error {
	if _, err := db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
