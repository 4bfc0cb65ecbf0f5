// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation derives CO_CITED and BIB_COUPLED edges from the
// CITES edge set retrieved from the store after traversal.
package citation

import (
	"encoding/json"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// pairKey is the unordered pair key (min, max) used by both analytic
// edge builders.
type pairKey struct {
	lo, hi int64
}

func makePairKey(a, b int64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// referenceSets groups CITES edges by citing paper, returning the set of
// cited ids per citer.
func referenceSets(citesEdges []types.Edge) map[int64]map[int64]bool {
	sets := make(map[int64]map[int64]bool)
	for _, e := range citesEdges {
		if sets[e.Src] == nil {
			sets[e.Src] = make(map[int64]bool)
		}
		sets[e.Src][e.Dst] = true
	}
	return sets
}

// CoCitation groups CITES edges by citing paper and, for every unordered
// pair within a citer's reference set, increments a pair count. It emits
// one CO_CITED edge per pair with weight normalized to [0,1] by the
// maximum observed count; provenance records the raw count.
func CoCitation(citesEdges []types.Edge) []types.Edge {
	sets := referenceSets(citesEdges)

	counts := make(map[pairKey]int)
	for _, refs := range sets {
		ids := make([]int64, 0, len(refs))
		for id := range refs {
			ids = append(ids, id)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				counts[makePairKey(ids[i], ids[j])]++
			}
		}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return nil
	}

	edges := make([]types.Edge, 0, len(counts))
	for key, count := range counts {
		provenance, _ := json.Marshal(map[string]any{"count": count})
		edges = append(edges, types.Edge{
			Src:        key.lo,
			Dst:        key.hi,
			Type:       types.EdgeCoCited,
			Weight:     float64(count) / float64(maxCount),
			Confidence: 1.0,
			CreatedBy:  types.CreatorAlgo,
			Provenance: string(provenance),
		})
	}
	return edges
}
