// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring computes the composite relevance/recency/centrality
// score reported alongside each paper. The value persisted into
// papers.influence_score is always the normalized PageRank, never the
// composite — composite is report-only.
package scoring

import (
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/corpus"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// Weights are the composite's three coefficients; must sum to 1.0.
type Weights struct {
	PageRank float64
	Relevance float64
	Recency   float64
}

// DefaultWeights matches the spec's default split.
func DefaultWeights() Weights {
	return Weights{PageRank: 0.5, Relevance: 0.3, Recency: 0.2}
}

// minPageRankMax floors the PageRank normalizer so a near-empty graph
// doesn't divide by a vanishingly small max.
const minPageRankMax = 1e-3

// Score is the composite result for one paper.
type Score struct {
	PaperID   int64
	PageRank  float64
	Relevance float64
	Recency   float64
	Composite float64
}

// Compute returns one Score per paper. topicTokens is the tokenized
// topic query, or nil when no topic was supplied (relevance is then
// always 0). currentYear anchors recency for papers with a zero year.
func Compute(papers []types.Paper, pagerank map[int64]float64, c *corpus.Corpus, topicTokens []string, weights Weights, currentYear int) []Score {
	maxPR := minPageRankMax
	for _, s := range pagerank {
		if s > maxPR {
			maxPR = s
		}
	}

	yearMin := 0
	for _, p := range papers {
		if p.Year > 1900 && (yearMin == 0 || p.Year < yearMin) {
			yearMin = p.Year
		}
	}
	if yearMin == 0 {
		yearMin = currentYear
	}

	yearSpan := currentYear - yearMin
	if yearSpan < 1 {
		yearSpan = 1
	}

	scores := make([]Score, 0, len(papers))
	for _, p := range papers {
		prNorm := pagerank[p.ID] / maxPR

		var rel float64
		if len(topicTokens) > 0 {
			rel = c.Relevance(p.ID, topicTokens)
		}

		year := p.Year
		if year == 0 {
			year = currentYear
		}
		rec := float64(year-yearMin) / float64(yearSpan)

		composite := prNorm*weights.PageRank + rel*weights.Relevance + rec*weights.Recency
		if composite > 1.0 {
			composite = 1.0
		}

		scores = append(scores, Score{
			PaperID:   p.ID,
			PageRank:  prNorm,
			Relevance: rel,
			Recency:   rec,
			Composite: composite,
		})
	}
	return scores
}
