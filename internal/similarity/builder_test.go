// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/corpus"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

func TestBuild_EmitsEdgeAboveThreshold(t *testing.T) {
	docs := []corpus.Document{
		{PaperID: 1, Title: "attention transformer encoder decoder"},
		{PaperID: 2, Title: "attention transformer encoder decoder"},
		{PaperID: 3, Title: "reinforcement learning policy gradient"},
	}
	c := corpus.Build(docs, zerolog.Nop())

	edges := Build(c, []int64{1, 2, 3}, 10, 0.25)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(1), edges[0].Src)
	assert.Equal(t, int64(2), edges[0].Dst)
	assert.Equal(t, types.EdgeSimilarText, edges[0].Type)
	assert.Equal(t, edges[0].Weight, edges[0].Confidence)
}

func TestBuild_DedupsUnorderedPair(t *testing.T) {
	docs := []corpus.Document{
		{PaperID: 1, Title: "attention transformer encoder decoder"},
		{PaperID: 2, Title: "attention transformer encoder decoder"},
		{PaperID: 3, Title: "reinforcement learning policy gradient"},
	}
	c := corpus.Build(docs, zerolog.Nop())

	edges := Build(c, []int64{1, 2, 3}, 10, 0.1)
	assert.Len(t, edges, 1)
}

func TestBuild_RespectsTopK(t *testing.T) {
	docs := []corpus.Document{
		{PaperID: 1, Title: "alpha beta gamma delta"},
		{PaperID: 2, Title: "alpha beta gamma epsilon"},
		{PaperID: 3, Title: "alpha beta gamma zeta"},
		{PaperID: 4, Title: "alpha beta gamma eta"},
	}
	c := corpus.Build(docs, zerolog.Nop())

	edges := Build(c, []int64{1, 2, 3, 4}, 1, 0.0)
	// Each doc keeps at most 1 peer; total edges after pair-dedup <= 4.
	assert.LessOrEqual(t, len(edges), 4)
}

func TestBuild_NoEdgesBelowThreshold(t *testing.T) {
	docs := []corpus.Document{
		{PaperID: 1, Title: "attention transformer encoder decoder"},
		{PaperID: 2, Title: "reinforcement learning policy gradient"},
	}
	c := corpus.Build(docs, zerolog.Nop())

	edges := Build(c, []int64{1, 2}, 10, 0.25)
	assert.Empty(t, edges)
}
