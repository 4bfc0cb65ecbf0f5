// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphalgo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

func cites(src, dst int64) types.Edge {
	return types.Edge{Src: src, Dst: dst, Type: types.EdgeCites}
}

func TestPageRank_ScoresSumToOne(t *testing.T) {
	ids := []int64{1, 2, 3, 4}
	edges := []types.Edge{
		cites(1, 2), cites(1, 3),
		cites(2, 3), cites(2, 4),
		cites(3, 4),
	}

	result := PageRank(ids, edges, DefaultPageRankConfig())

	var sum float64
	for _, s := range result.Scores {
		assert.Greater(t, s, 0.0)
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
	assert.True(t, result.Converged)
}

func TestPageRank_SinkOutranksSource(t *testing.T) {
	// A->B, A->C, B->C, B->D, C->D: D accumulates the most inbound mass.
	ids := []int64{1, 2, 3, 4}
	edges := []types.Edge{
		cites(1, 2), cites(1, 3),
		cites(2, 3), cites(2, 4),
		cites(3, 4),
	}

	result := PageRank(ids, edges, DefaultPageRankConfig())
	assert.Greater(t, result.Scores[4], result.Scores[1])
}

func TestPageRank_NoEdgesUniformScores(t *testing.T) {
	ids := []int64{1, 2, 3}
	result := PageRank(ids, nil, DefaultPageRankConfig())

	for _, id := range ids {
		assert.InDelta(t, 1.0/3.0, result.Scores[id], 1e-6)
	}
}

func TestPageRank_EmptyGraph(t *testing.T) {
	result := PageRank(nil, nil, DefaultPageRankConfig())
	assert.Empty(t, result.Scores)
	assert.True(t, result.Converged)
}

func TestPageRank_DeterministicAcrossRuns(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}
	edges := []types.Edge{
		cites(1, 2), cites(2, 3), cites(3, 1), cites(3, 4), cites(4, 5),
	}

	first := PageRank(ids, edges, DefaultPageRankConfig())
	second := PageRank(ids, edges, DefaultPageRankConfig())
	assert.Equal(t, first.Scores, second.Scores)
}
