// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// migration is a single schema migration step, applied inside its own
// transaction and recorded via PRAGMA user_version.
type migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// migrations is the ordered list of all schema migrations. Append new
// migrations to the end with incrementing Version numbers.
var migrations = []migration{
	{
		Version:     1,
		Description: "initial schema: papers, edges, authors, clusters, entities, runs",
		Up:          migrateV1,
	},
}

func latestVersion() int {
	return migrations[len(migrations)-1].Version
}

func getSchemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// runMigrations brings the database schema up to the latest version,
// applying each unapplied migration in its own transaction and stamping
// PRAGMA user_version after each commit.
func runMigrations(db *sql.DB, logger zerolog.Logger) error {
	current, err := getSchemaVersion(db)
	if err != nil {
		return err
	}

	latest := latestVersion()
	if current >= latest {
		return nil
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		logger.Info().Int("version", m.Version).Str("description", m.Description).Msg("applying migration")

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}

		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			return fmt.Errorf("setting schema version %d: %w", m.Version, err)
		}
	}

	return nil
}
