// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// UpsertEntity inserts an entity keyed on (type, name), or returns the
// existing id on conflict. On conflict the stored aliases are replaced by
// e.Aliases.
func UpsertEntity(tx *sql.Tx, e types.Entity) (int64, error) {
	aliasesJSON, err := json.Marshal(e.Aliases)
	if err != nil {
		return 0, fmt.Errorf("encoding aliases for entity %s: %w", e.Name, err)
	}

	_, err = tx.Exec(
		`INSERT INTO entities (type, name, aliases) VALUES (?, ?, ?)
		 ON CONFLICT(type, name) DO UPDATE SET aliases=excluded.aliases`,
		string(e.Type), e.Name, string(aliasesJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("upserting entity %s: %w", e.Name, err)
	}

	var id int64
	err = tx.QueryRow(`SELECT id FROM entities WHERE type = ? AND name = ?`, string(e.Type), e.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("looking up entity %s: %w", e.Name, err)
	}
	return id, nil
}

// LinkPaperEntity records that paperID's text mentions entityID in the
// given role. Duplicate (paper, entity, role) triples are ignored.
func LinkPaperEntity(tx *sql.Tx, paperID, entityID int64, role types.EntityRole) error {
	_, err := tx.Exec(
		`INSERT OR IGNORE INTO paper_entities (paper_id, entity_id, role) VALUES (?, ?, ?)`,
		paperID, entityID, string(role),
	)
	if err != nil {
		return fmt.Errorf("linking paper %d to entity %d: %w", paperID, entityID, err)
	}
	return nil
}
