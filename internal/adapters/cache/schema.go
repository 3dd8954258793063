package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSQLiteSchema creates the path-result cache table for the
// embedded/offline deployment.
func InitSQLiteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init path cache schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS path_result_cache (
		cache_key   TEXT PRIMARY KEY,
		result_json TEXT NOT NULL
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init path cache schema: %w", err)
	}
	return nil
}

// InitPostgresSchema creates the path-result cache table for the
// networked deployment.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init path cache schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS path_result_cache (
		cache_key   TEXT PRIMARY KEY,
		result_json JSONB NOT NULL
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init path cache schema: %w", err)
	}
	return nil
}
