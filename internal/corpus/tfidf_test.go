// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SkipsEmptyTokenDocuments(t *testing.T) {
	docs := []Document{
		{PaperID: 1, Title: "Attention mechanisms for sequence modeling"},
		{PaperID: 2, Title: "a b"}, // tokenizes to nothing
	}
	c := Build(docs, zerolog.Nop())

	assert.Equal(t, 1, c.N)
	_, ok := c.Vectors[2]
	assert.False(t, ok)
	_, ok = c.Vectors[1]
	assert.True(t, ok)
}

func TestBuild_FallsBackToKeywordsWhenAbstractMissing(t *testing.T) {
	docs := []Document{
		{PaperID: 1, Title: "Graph neural networks", Keywords: `["embedding","clustering"]`},
	}
	c := Build(docs, zerolog.Nop())

	require.Contains(t, c.Vectors, int64(1))
	vec := c.Vectors[1]
	_, hasEmbedding := vec["embedding"]
	_, hasClustering := vec["clustering"]
	assert.True(t, hasEmbedding)
	assert.True(t, hasClustering)
}

func TestBuild_HigherDFLowersWeight(t *testing.T) {
	docs := []Document{
		{PaperID: 1, Title: "attention transformer network"},
		{PaperID: 2, Title: "attention recurrent network"},
		{PaperID: 3, Title: "convolutional vision network"},
	}
	c := Build(docs, zerolog.Nop())

	// "network" appears in all 3 docs (low idf); "attention" in 2 of 3.
	assert.Less(t, c.Vectors[1]["network"], c.Vectors[1]["attention"])
}

func TestTopTerms_BreaksTiesByInsertionOrder(t *testing.T) {
	docs := []Document{
		{PaperID: 1, Title: "alpha beta"},
		{PaperID: 2, Title: "alpha beta"},
	}
	c := Build(docs, zerolog.Nop())

	top := c.TopTerms([]int64{1, 2}, 2)
	require.Len(t, top, 2)
	assert.Equal(t, []string{"alpha", "beta"}, top)
}

func TestTopTerms_UnknownDocIgnored(t *testing.T) {
	docs := []Document{{PaperID: 1, Title: "alpha beta gamma"}}
	c := Build(docs, zerolog.Nop())

	top := c.TopTerms([]int64{1, 999}, 3)
	assert.Len(t, top, 3)
}

func TestRelevance_EmptyQueryReturnsZero(t *testing.T) {
	docs := []Document{{PaperID: 1, Title: "alpha beta"}}
	c := Build(docs, zerolog.Nop())
	assert.Equal(t, 0.0, c.Relevance(1, nil))
}

func TestRelevance_UnknownDocReturnsZero(t *testing.T) {
	docs := []Document{{PaperID: 1, Title: "alpha beta"}}
	c := Build(docs, zerolog.Nop())
	assert.Equal(t, 0.0, c.Relevance(999, []string{"alpha"}))
}

func TestRelevance_ClampedToOne(t *testing.T) {
	docs := []Document{
		{PaperID: 1, Title: "alpha"},
	}
	c := Build(docs, zerolog.Nop())
	rel := c.Relevance(1, []string{"alpha"})
	assert.LessOrEqual(t, rel, 1.0)
}
