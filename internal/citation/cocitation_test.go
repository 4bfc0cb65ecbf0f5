// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

func citesEdge(src, dst int64) types.Edge {
	return types.Edge{Src: src, Dst: dst, Type: types.EdgeCites}
}

func TestCoCitation_EmitsPairFromSharedCiter(t *testing.T) {
	edges := []types.Edge{
		citesEdge(1, 10),
		citesEdge(1, 20),
	}

	out := CoCitation(edges)
	require.Len(t, out, 1)
	assert.Equal(t, int64(10), out[0].Src)
	assert.Equal(t, int64(20), out[0].Dst)
	assert.Equal(t, types.EdgeCoCited, out[0].Type)
	assert.Equal(t, 1.0, out[0].Weight)
}

func TestCoCitation_WeightNormalizedByMaxCount(t *testing.T) {
	edges := []types.Edge{
		citesEdge(1, 10), citesEdge(1, 20),
		citesEdge(2, 10), citesEdge(2, 20),
		citesEdge(3, 10), citesEdge(3, 30),
	}

	out := CoCitation(edges)

	byPair := make(map[pairKey]types.Edge)
	for _, e := range out {
		byPair[makePairKey(e.Src, e.Dst)] = e
	}

	pair1020 := byPair[makePairKey(10, 20)]
	assert.Equal(t, 1.0, pair1020.Weight)

	pair1030 := byPair[makePairKey(10, 30)]
	assert.InDelta(t, 1.0/2.0, pair1030.Weight, 1e-9)
}

func TestCoCitation_NoSharedCiterEmitsNothing(t *testing.T) {
	edges := []types.Edge{
		citesEdge(1, 10),
		citesEdge(2, 20),
	}
	assert.Empty(t, CoCitation(edges))
}

func TestCoCitation_SingleReferenceEmitsNothing(t *testing.T) {
	edges := []types.Edge{citesEdge(1, 10)}
	assert.Empty(t, CoCitation(edges))
}
