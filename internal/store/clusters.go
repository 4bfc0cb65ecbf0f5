// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// InsertCluster inserts a cluster row and its paper membership junction
// rows, returning the assigned internal id.
func InsertCluster(tx *sql.Tx, c types.Cluster) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO clusters (method, name, description, stats) VALUES (?, ?, ?, ?)`,
		c.Method, c.Name, c.Description, c.Stats,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting cluster %s: %w", c.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading cluster id: %w", err)
	}

	for _, paperID := range c.PaperIDs {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO paper_clusters (paper_id, cluster_id) VALUES (?, ?)`,
			paperID, id,
		); err != nil {
			return 0, fmt.Errorf("linking paper %d to cluster %d: %w", paperID, id, err)
		}
	}

	return id, nil
}

// InsertClusters inserts a batch of clusters.
func InsertClusters(tx *sql.Tx, clusters []types.Cluster) error {
	for _, c := range clusters {
		if _, err := InsertCluster(tx, c); err != nil {
			return err
		}
	}
	return nil
}
