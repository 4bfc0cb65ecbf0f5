// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// AllClusters returns every cluster with its member paper ids populated,
// in ascending cluster id order.
func AllClusters(tx *sql.Tx) ([]types.Cluster, error) {
	rows, err := tx.Query(`SELECT id, method, name, description, stats FROM clusters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying clusters: %w", err)
	}
	defer rows.Close()

	var clusters []types.Cluster
	for rows.Next() {
		var c types.Cluster
		var name, description, stats sql.NullString
		if err := rows.Scan(&c.ID, &c.Method, &name, &description, &stats); err != nil {
			return nil, fmt.Errorf("scanning cluster: %w", err)
		}
		c.Name = name.String
		c.Description = description.String
		c.Stats = stats.String
		clusters = append(clusters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range clusters {
		members, err := tx.Query(`SELECT paper_id FROM paper_clusters WHERE cluster_id = ? ORDER BY paper_id`, clusters[i].ID)
		if err != nil {
			return nil, fmt.Errorf("querying cluster members: %w", err)
		}
		for members.Next() {
			var paperID int64
			if err := members.Scan(&paperID); err != nil {
				members.Close()
				return nil, fmt.Errorf("scanning cluster member: %w", err)
			}
			clusters[i].PaperIDs = append(clusters[i].PaperIDs, paperID)
		}
		err = members.Err()
		members.Close()
		if err != nil {
			return nil, err
		}
	}

	return clusters, nil
}

// AllEntities returns every entity in ascending id order. The aliases
// column is not read, so each returned entity has a nil Aliases list.
func AllEntities(tx *sql.Tx) ([]types.Entity, error) {
	rows, err := tx.Query(`SELECT id, type, name FROM entities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	var entities []types.Entity
	for rows.Next() {
		var e types.Entity
		var entityType string
		if err := rows.Scan(&e.ID, &entityType, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		e.Type = types.EntityType(entityType)
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// AllPaperEntities returns every paper-entity link, in ascending paper id
// order, for export formats that need to reconstruct the junction table.
func AllPaperEntities(tx *sql.Tx) ([]types.PaperEntity, error) {
	rows, err := tx.Query(`SELECT paper_id, entity_id, role FROM paper_entities ORDER BY paper_id, entity_id`)
	if err != nil {
		return nil, fmt.Errorf("querying paper entities: %w", err)
	}
	defer rows.Close()

	var links []types.PaperEntity
	for rows.Next() {
		var link types.PaperEntity
		var role string
		if err := rows.Scan(&link.PaperID, &link.EntityID, &role); err != nil {
			return nil, fmt.Errorf("scanning paper entity: %w", err)
		}
		link.Role = types.EntityRole(role)
		links = append(links, link)
	}
	return links, rows.Err()
}

// LatestRun returns the most recently inserted run record, or ok=false if
// no build has ever committed a run.
func LatestRun(tx *sql.Tx) (run types.Run, ok bool, err error) {
	row := tx.QueryRow(`SELECT id, started_at, version, config_snapshot, source, spine, depth, stats_snapshot
		FROM runs ORDER BY id DESC LIMIT 1`)

	var startedAt string
	var statsSnapshot sql.NullString
	err = row.Scan(&run.ID, &startedAt, &run.Version, &run.ConfigSnapshot, &run.Source, &run.Spine, &run.Depth, &statsSnapshot)
	if err == sql.ErrNoRows {
		return types.Run{}, false, nil
	}
	if err != nil {
		return types.Run{}, false, fmt.Errorf("querying latest run: %w", err)
	}
	run.StatsSnapshot = statsSnapshot.String
	if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return types.Run{}, false, fmt.Errorf("parsing run timestamp: %w", err)
	}
	return run, true, nil
}
