package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// NewConnection creates a new database connection
func NewConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// schema holds the statements creating both tables and the uniqueness
// constraints registration relies on. users_email_key and users_username_key
// back the duplicate checks: the pre-insert SELECTs only exist to produce
// friendly errors, these indexes are what actually enforces uniqueness.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		first_name    TEXT,
		last_name     TEXT,
		username      TEXT,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username) WHERE username IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS paths (
		id         BIGSERIAL PRIMARY KEY,
		user_email TEXT,
		name       TEXT NOT NULL,
		params     JSONB NOT NULL DEFAULT '{}'::jsonb,
		waypoints  JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS paths_created_at_idx ON paths (created_at DESC)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
