// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// symmetricEdgeTypes are stored once per unordered pair with Src < Dst;
// InsertEdge enforces the ordering for these before writing.
var symmetricEdgeTypes = map[types.EdgeType]bool{
	types.EdgeCoCited:     true,
	types.EdgeBibCoupled:  true,
	types.EdgeSimilarText: true,
	types.EdgeSharedKeywords: true,
	types.EdgeSameAuthor:  true,
	types.EdgeSameVenue:   true,
}

// InsertEdge inserts an edge, normalizing Src < Dst for symmetric edge
// types, and silently ignoring a duplicate (src, dst, type) triple.
func InsertEdge(tx *sql.Tx, e types.Edge) error {
	src, dst := e.Src, e.Dst
	if symmetricEdgeTypes[e.Type] && src > dst {
		src, dst = dst, src
	}

	_, err := tx.Exec(
		`INSERT OR IGNORE INTO edges (src_id, dst_id, type, weight, confidence, rationale, evidence, created_by, provenance)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		src, dst, string(e.Type), e.Weight, e.Confidence, e.Rationale, e.Evidence, string(e.CreatedBy), e.Provenance,
	)
	if err != nil {
		return fmt.Errorf("inserting edge %d->%d (%s): %w", src, dst, e.Type, err)
	}
	return nil
}

// InsertEdges inserts a batch of edges, applying InsertEdge to each.
func InsertEdges(tx *sql.Tx, edges []types.Edge) error {
	for _, e := range edges {
		if err := InsertEdge(tx, e); err != nil {
			return err
		}
	}
	return nil
}

// AllEdges returns every edge in the store, ordered by internal id.
func AllEdges(tx *sql.Tx) ([]types.Edge, error) {
	rows, err := tx.Query(
		`SELECT id, src_id, dst_id, type, weight, confidence, rationale, evidence, created_by, provenance
		 FROM edges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var edges []types.Edge
	for rows.Next() {
		var e types.Edge
		var edgeType, createdBy string
		if err := rows.Scan(&e.ID, &e.Src, &e.Dst, &edgeType, &e.Weight, &e.Confidence,
			&e.Rationale, &e.Evidence, &createdBy, &e.Provenance); err != nil {
			return nil, fmt.Errorf("scanning edge row: %w", err)
		}
		e.Type = types.EdgeType(edgeType)
		e.CreatedBy = types.Creator(createdBy)
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
