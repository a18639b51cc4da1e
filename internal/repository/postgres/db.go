package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func NewDB(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the archive table when it does not exist yet. The
// schema is small enough that a migration tool would be overhead.
func EnsureSchema(db *sqlx.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS encounters (
			id UUID PRIMARY KEY,
			clinic_key TEXT NOT NULL,
			source TEXT NOT NULL,
			transcript TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL,
			model_used TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_encounters_clinic_created
			ON encounters (clinic_key, created_at DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
