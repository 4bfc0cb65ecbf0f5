// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// QueryStats computes the aggregate counts reported by `papergraph
// inspect` and recorded into Run.StatsSnapshot.
func QueryStats(tx *sql.Tx) (types.Stats, error) {
	var stats types.Stats

	if err := tx.QueryRow(`SELECT COUNT(*) FROM papers`).Scan(&stats.PaperCount); err != nil {
		return stats, fmt.Errorf("counting papers: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM edges`).Scan(&stats.EdgeCount); err != nil {
		return stats, fmt.Errorf("counting edges: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM clusters`).Scan(&stats.ClusterCount); err != nil {
		return stats, fmt.Errorf("counting clusters: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM entities`).Scan(&stats.EntityCount); err != nil {
		return stats, fmt.Errorf("counting entities: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&stats.RunCount); err != nil {
		return stats, fmt.Errorf("counting runs: %w", err)
	}

	rows, err := tx.Query(`SELECT type, COUNT(*) FROM edges GROUP BY type`)
	if err != nil {
		return stats, fmt.Errorf("counting edges by type: %w", err)
	}
	defer rows.Close()

	stats.EdgesByType = make(map[string]int)
	for rows.Next() {
		var edgeType string
		var count int
		if err := rows.Scan(&edgeType, &count); err != nil {
			return stats, fmt.Errorf("scanning edge type count: %w", err)
		}
		stats.EdgesByType[edgeType] = count
	}
	return stats, rows.Err()
}
