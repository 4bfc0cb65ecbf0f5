// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the paper graph to an embedded SQLite database.
// Each write path (seed persistence, BFS traversal, post-processing)
// commits through its own WithTx call, so a failure partway through a
// build leaves everything gathered up to that point durable instead of
// losing it to a single all-encompassing rollback (see build.Run on the
// propagation policy).
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Store wraps the SQLite database backing a paper graph.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open creates or opens the SQLite database at path, enabling WAL mode
// and foreign-key enforcement, and migrates the schema to the latest
// version.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating store schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a single transaction, committing on success and
// rolling back on any error or panic. The build orchestrator calls this
// once per logical stage (seed persistence, each BFS insert, post-
// processing) rather than once per run, so an error in a later stage
// can't roll back work an earlier stage already committed.
func (s *Store) WithTx(fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
