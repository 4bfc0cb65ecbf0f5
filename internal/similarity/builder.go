// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"encoding/json"
	"sort"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/corpus"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

const algorithmName = "cosine_tfidf"
const algorithmVersion = 1

// pairKey is the unordered pair key (min(a,b), max(a,b)) used to dedup
// emitted edges across documents.
type pairKey struct {
	lo, hi int64
}

func makePairKey(a, b int64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

type scoredPeer struct {
	id    int64
	score float64
}

// Build emits one SIMILAR_TEXT edge per unordered pair of documents whose
// cosine similarity is at least threshold, keeping only the topK highest
// peers per document. Edge weight and confidence both carry the cosine
// value; provenance records the algorithm, its version, k, and the
// threshold used.
func Build(c *corpus.Corpus, ids []int64, topK int, threshold float64) []types.Edge {
	var edges []types.Edge
	seen := make(map[pairKey]bool)

	for _, id := range ids {
		vec, ok := c.Vectors[id]
		if !ok {
			continue
		}

		var peers []scoredPeer
		for _, other := range ids {
			if other == id {
				continue
			}
			otherVec, ok := c.Vectors[other]
			if !ok {
				continue
			}
			score := Cosine(vec, otherVec)
			if score >= threshold {
				peers = append(peers, scoredPeer{id: other, score: score})
			}
		}

		sort.SliceStable(peers, func(i, j int) bool {
			return peers[i].score > peers[j].score
		})
		if len(peers) > topK {
			peers = peers[:topK]
		}

		for _, peer := range peers {
			key := makePairKey(id, peer.id)
			if seen[key] {
				continue
			}
			seen[key] = true

			provenance, _ := json.Marshal(map[string]any{
				"algorithm": algorithmName,
				"version":   algorithmVersion,
				"k":         topK,
				"threshold": threshold,
			})

			edges = append(edges, types.Edge{
				Src:        key.lo,
				Dst:        key.hi,
				Type:       types.EdgeSimilarText,
				Weight:     peer.score,
				Confidence: peer.score,
				CreatedBy:  types.CreatorAlgo,
				Provenance: string(provenance),
			})
		}
	}

	return edges
}
