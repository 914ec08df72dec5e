// Package cache provides optional Postgres-backed caches for external
// lookups. Every cache is nil-safe: a nil receiver disables caching without
// touching the calling code.
package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the cache tables if they do not exist.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			query      TEXT PRIMARY KEY,
			results    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS route_cache (
			route_key  TEXT PRIMARY KEY,
			distance_m DOUBLE PRECISION NOT NULL,
			duration_s DOUBLE PRECISION NOT NULL,
			geometry   TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init cache schema: %w", err)
		}
	}
	return nil
}
