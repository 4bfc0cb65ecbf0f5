// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// InsertRun records one build invocation, returning the assigned
// internal id.
func InsertRun(tx *sql.Tx, r types.Run) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO runs (started_at, version, config_snapshot, source, spine, depth, stats_snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.Format(time.RFC3339), r.Version, r.ConfigSnapshot, r.Source, r.Spine, r.Depth, r.StatsSnapshot,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run record: %w", err)
	}
	return res.LastInsertId()
}
