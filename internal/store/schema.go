// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import "database/sql"

func migrateV1(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			version TEXT NOT NULL,
			config_snapshot TEXT NOT NULL,
			source TEXT NOT NULL,
			spine TEXT NOT NULL,
			depth INTEGER NOT NULL,
			stats_snapshot TEXT
		)`,
		`CREATE TABLE papers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			source_id TEXT NOT NULL,
			doi TEXT,
			arxiv_id TEXT,
			title TEXT NOT NULL,
			abstract TEXT,
			year INTEGER,
			venue TEXT,
			url TEXT,
			citation_count INTEGER NOT NULL DEFAULT 0,
			influence_score REAL NOT NULL DEFAULT 0,
			keywords TEXT,
			concepts TEXT,
			UNIQUE(source, source_id)
		)`,
		`CREATE INDEX idx_papers_doi ON papers(doi) WHERE doi != ''`,
		`CREATE INDEX idx_papers_arxiv_id ON papers(arxiv_id) WHERE arxiv_id != ''`,
		`CREATE INDEX idx_papers_source_id ON papers(source_id)`,
		`CREATE INDEX idx_papers_year ON papers(year)`,
		`CREATE TABLE edges (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			src_id INTEGER NOT NULL REFERENCES papers(id),
			dst_id INTEGER NOT NULL REFERENCES papers(id),
			type TEXT NOT NULL,
			weight REAL NOT NULL DEFAULT 0,
			confidence REAL NOT NULL DEFAULT 1,
			rationale TEXT,
			evidence TEXT,
			created_by TEXT NOT NULL DEFAULT 'algo',
			provenance TEXT,
			UNIQUE(src_id, dst_id, type)
		)`,
		`CREATE INDEX idx_edges_src ON edges(src_id)`,
		`CREATE INDEX idx_edges_dst ON edges(dst_id)`,
		`CREATE INDEX idx_edges_type ON edges(type)`,
		`CREATE TABLE authors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE paper_authors (
			paper_id INTEGER NOT NULL REFERENCES papers(id),
			author_id INTEGER NOT NULL REFERENCES authors(id),
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (paper_id, author_id)
		)`,
		`CREATE TABLE clusters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			method TEXT NOT NULL,
			name TEXT,
			description TEXT,
			stats TEXT
		)`,
		`CREATE TABLE paper_clusters (
			paper_id INTEGER NOT NULL REFERENCES papers(id),
			cluster_id INTEGER NOT NULL REFERENCES clusters(id),
			PRIMARY KEY (paper_id, cluster_id)
		)`,
		`CREATE TABLE entities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			aliases TEXT,
			UNIQUE(type, name)
		)`,
		`CREATE TABLE paper_entities (
			paper_id INTEGER NOT NULL REFERENCES papers(id),
			entity_id INTEGER NOT NULL REFERENCES entities(id),
			role TEXT NOT NULL,
			PRIMARY KEY (paper_id, entity_id, role)
		)`,
		`CREATE INDEX idx_paper_entities_entity ON paper_entities(entity_id)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
