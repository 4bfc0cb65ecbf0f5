// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"encoding/json"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// BibliographicCoupling considers every unordered pair of citing papers
// with non-empty reference sets and emits a BIB_COUPLED edge when their
// reference sets overlap. Weight is the overlap size normalized by the
// smaller of the two reference-set sizes; provenance records the overlap
// and both set sizes.
func BibliographicCoupling(citesEdges []types.Edge) []types.Edge {
	sets := referenceSets(citesEdges)

	citers := make([]int64, 0, len(sets))
	for id, refs := range sets {
		if len(refs) > 0 {
			citers = append(citers, id)
		}
	}

	var edges []types.Edge
	for i := 0; i < len(citers); i++ {
		for j := i + 1; j < len(citers); j++ {
			a, b := citers[i], citers[j]
			refsA, refsB := sets[a], sets[b]

			overlap := 0
			smaller, larger := refsA, refsB
			if len(larger) < len(smaller) {
				smaller, larger = larger, smaller
			}
			for ref := range smaller {
				if larger[ref] {
					overlap++
				}
			}
			if overlap == 0 {
				continue
			}

			minSize := len(refsA)
			if len(refsB) < minSize {
				minSize = len(refsB)
			}

			provenance, _ := json.Marshal(map[string]any{
				"overlap":     overlap,
				"ref_count_a": len(refsA),
				"ref_count_b": len(refsB),
			})

			key := makePairKey(a, b)
			edges = append(edges, types.Edge{
				Src:        key.lo,
				Dst:        key.hi,
				Type:       types.EdgeBibCoupled,
				Weight:     float64(overlap) / float64(minSize),
				Confidence: 1.0,
				CreatedBy:  types.CreatorAlgo,
				Provenance: string(provenance),
			})
		}
	}
	return edges
}
