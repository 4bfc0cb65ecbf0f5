// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// UpsertPaper inserts a paper keyed on (source, source_id), or merges new
// field values into an existing row on conflict: title is unconditionally
// replaced by the incoming value, the other nullable fields are coalesced
// (non-empty incoming value wins, otherwise the stored value survives),
// and citation_count takes the max of old and new. Returns the internal
// paper id either way.
func UpsertPaper(tx *sql.Tx, p types.Paper) (int64, error) {
	_, err := tx.Exec(
		`INSERT INTO papers (source, source_id, doi, arxiv_id, title, abstract, year, venue, url, citation_count, keywords, concepts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source, source_id) DO UPDATE SET
			doi=CASE WHEN excluded.doi != '' THEN excluded.doi ELSE papers.doi END,
			arxiv_id=CASE WHEN excluded.arxiv_id != '' THEN excluded.arxiv_id ELSE papers.arxiv_id END,
			title=excluded.title,
			abstract=CASE WHEN excluded.abstract != '' THEN excluded.abstract ELSE papers.abstract END,
			year=CASE WHEN excluded.year != 0 THEN excluded.year ELSE papers.year END,
			venue=CASE WHEN excluded.venue != '' THEN excluded.venue ELSE papers.venue END,
			url=CASE WHEN excluded.url != '' THEN excluded.url ELSE papers.url END,
			citation_count=MAX(papers.citation_count, excluded.citation_count),
			keywords=CASE WHEN excluded.keywords != '' THEN excluded.keywords ELSE papers.keywords END,
			concepts=CASE WHEN excluded.concepts != '' THEN excluded.concepts ELSE papers.concepts END`,
		p.Source, p.SourceID, p.DOI, p.ArxivID, p.Title, p.Abstract, p.Year, p.Venue, p.URL,
		p.CitationCount, p.Keywords, p.Concepts,
	)
	if err != nil {
		return 0, fmt.Errorf("upserting paper %s/%s: %w", p.Source, p.SourceID, err)
	}

	var id int64
	err = tx.QueryRow(`SELECT id FROM papers WHERE source = ? AND source_id = ?`, p.Source, p.SourceID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("looking up paper %s/%s: %w", p.Source, p.SourceID, err)
	}
	return id, nil
}

// UpsertPapers upserts a batch of papers in insertion order, returning
// their internal ids in the same order.
func UpsertPapers(tx *sql.Tx, papers []types.Paper) ([]int64, error) {
	ids := make([]int64, len(papers))
	for i, p := range papers {
		id, err := UpsertPaper(tx, p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// GetPaperByKey looks up a paper's internal id by its natural key.
// Returns (0, false) if not found.
func GetPaperByKey(tx *sql.Tx, key types.PaperKey) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(`SELECT id FROM papers WHERE source = ? AND source_id = ?`, key.Source, key.SourceID).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("looking up paper %s/%s: %w", key.Source, key.SourceID, err)
	}
	return id, true, nil
}

// UpdatePaperScore writes the normalized PageRank score into
// influence_score. The composite score (§4.9) is report-only and is
// never persisted here.
func UpdatePaperScore(tx *sql.Tx, paperID int64, score float64) error {
	_, err := tx.Exec(`UPDATE papers SET influence_score = ? WHERE id = ?`, score, paperID)
	if err != nil {
		return fmt.Errorf("updating influence score for paper %d: %w", paperID, err)
	}
	return nil
}

// AllPapers returns every paper in the store, ordered by internal id.
func AllPapers(tx *sql.Tx) ([]types.Paper, error) {
	rows, err := tx.Query(
		`SELECT id, source, source_id, doi, arxiv_id, title, abstract, year, venue, url,
			citation_count, influence_score, keywords, concepts
		 FROM papers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var p types.Paper
		if err := rows.Scan(&p.ID, &p.Source, &p.SourceID, &p.DOI, &p.ArxivID, &p.Title,
			&p.Abstract, &p.Year, &p.Venue, &p.URL, &p.CitationCount, &p.InfluenceScore,
			&p.Keywords, &p.Concepts); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
