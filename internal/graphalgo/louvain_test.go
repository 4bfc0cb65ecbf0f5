// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphalgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

func similar(src, dst int64, weight float64) types.Edge {
	return types.Edge{Src: src, Dst: dst, Type: types.EdgeSimilarText, Weight: weight}
}

func TestLouvain_EveryPaperInExactlyOneCommunity(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6}
	edges := []types.Edge{
		similar(1, 2, 1), similar(2, 3, 1), similar(1, 3, 1),
		similar(4, 5, 1), similar(5, 6, 1), similar(4, 6, 1),
		similar(3, 4, 0.05),
	}

	communities := Louvain(ids, edges, DefaultLouvainConfig())

	seen := map[int64]int{}
	for _, members := range communities {
		for _, id := range members {
			seen[id]++
		}
	}
	require.Len(t, seen, len(ids))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestLouvain_TightClustersSeparateFromWeakBridge(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6}
	edges := []types.Edge{
		similar(1, 2, 1), similar(2, 3, 1), similar(1, 3, 1),
		similar(4, 5, 1), similar(5, 6, 1), similar(4, 6, 1),
		similar(3, 4, 0.01),
	}

	communities := Louvain(ids, edges, DefaultLouvainConfig())

	memberOf := map[int64]int64{}
	for commID, members := range communities {
		for _, id := range members {
			memberOf[id] = commID
		}
	}

	assert.Equal(t, memberOf[1], memberOf[2])
	assert.Equal(t, memberOf[2], memberOf[3])
	assert.Equal(t, memberOf[4], memberOf[5])
	assert.Equal(t, memberOf[5], memberOf[6])
}

func TestLouvain_NoEdgesEachPaperSingleton(t *testing.T) {
	ids := []int64{1, 2, 3}
	communities := Louvain(ids, nil, DefaultLouvainConfig())
	assert.Len(t, communities, 3)
	for _, members := range communities {
		assert.Len(t, members, 1)
	}
}

func TestLouvain_DeterministicAcrossRuns(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}
	edges := []types.Edge{
		similar(1, 2, 1), similar(2, 3, 1), similar(3, 4, 1), similar(4, 5, 1),
	}

	first := Louvain(ids, edges, DefaultLouvainConfig())
	second := Louvain(ids, edges, DefaultLouvainConfig())
	assert.Equal(t, first, second)
}
