// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// fakeStore is an in-memory PaperStore for BFS tests; ids are assigned
// in insertion order starting at 100 so they're easy to distinguish
// from seed ids.
type fakeStore struct {
	byKey         map[types.PaperKey]int64
	nextID        int64
	insertedEdges []types.Edge
}

func newFakeStore(seeds []seedPaper) *fakeStore {
	s := &fakeStore{byKey: make(map[types.PaperKey]int64), nextID: 100}
	for _, seed := range seeds {
		s.byKey[seed.Key] = seed.ID
	}
	return s
}

func (s *fakeStore) LookupPaper(key types.PaperKey) (int64, bool, error) {
	id, ok := s.byKey[key]
	return id, ok, nil
}

func (s *fakeStore) InsertPaper(p types.Paper) (int64, error) {
	id := s.nextID
	s.nextID++
	s.byKey[p.Key()] = id
	return id, nil
}

func (s *fakeStore) InsertEdge(e types.Edge) error {
	s.insertedEdges = append(s.insertedEdges, e)
	return nil
}

func paper(id string) types.Paper {
	return types.Paper{Source: "openalex", SourceID: id, Title: id}
}

func TestExpand_InsertsNewPapersAndEmitsCitesEdges(t *testing.T) {
	seeds := []seedPaper{{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}}}
	adapter := &fakeAdapter{
		tag: "openalex",
		referencesByPaper: map[string][]types.Paper{
			"A": {paper("B"), paper("C")},
		},
	}
	st := newFakeStore(seeds)

	result, err := Expand(context.Background(), adapter, st, seeds, 1, 10, 10, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, result.NewPapers, 2)
	assert.Len(t, result.Edges, 2)
	for _, e := range result.Edges {
		assert.Equal(t, int64(1), e.Src)
		assert.Equal(t, types.EdgeCites, e.Type)
		assert.Equal(t, 1.0, e.Weight)
	}
}

func TestExpand_StopsAtCapacityWithoutInsertingOrEdging(t *testing.T) {
	seeds := []seedPaper{{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}}}
	adapter := &fakeAdapter{
		tag: "openalex",
		referencesByPaper: map[string][]types.Paper{
			"A": {paper("B"), paper("C"), paper("D")},
		},
	}
	st := newFakeStore(seeds)

	// max_papers = 1 means we start already at capacity (1 seed == 1 max).
	result, err := Expand(context.Background(), adapter, st, seeds, 1, 1, 10, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.NewPapers)
	assert.Empty(t, result.Edges)
}

func TestExpand_ExistingPaperEmitsEdgeButNoNewFrontierEntry(t *testing.T) {
	seeds := []seedPaper{
		{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}},
		{ID: 2, Key: types.PaperKey{Source: "openalex", SourceID: "B"}},
	}
	adapter := &fakeAdapter{
		tag: "openalex",
		referencesByPaper: map[string][]types.Paper{
			"A": {paper("B")},
		},
	}
	st := newFakeStore(seeds)

	result, err := Expand(context.Background(), adapter, st, seeds, 2, 10, 10, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.NewPapers)
	require.Len(t, result.Edges, 1)
	assert.Equal(t, int64(1), result.Edges[0].Src)
	assert.Equal(t, int64(2), result.Edges[0].Dst)
}

func TestExpand_SharedReferenceEmitsOneEdgePerCiter(t *testing.T) {
	seeds := []seedPaper{
		{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}},
		{ID: 2, Key: types.PaperKey{Source: "openalex", SourceID: "B"}},
		{ID: 3, Key: types.PaperKey{Source: "openalex", SourceID: "C"}},
	}
	adapter := &fakeAdapter{
		tag: "openalex",
		referencesByPaper: map[string][]types.Paper{
			"A": {paper("C")},
			"B": {paper("C")},
		},
	}
	st := newFakeStore(seeds)

	result, err := Expand(context.Background(), adapter, st, seeds, 1, 10, 10, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, result.Edges, 2)
}

func TestExpand_FetchFailureLogsAndContinues(t *testing.T) {
	seeds := []seedPaper{
		{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}},
		{ID: 2, Key: types.PaperKey{Source: "openalex", SourceID: "B"}},
	}
	adapter := &fakeAdapter{
		tag:           "openalex",
		referencesErr: map[string]error{"A": errors.New("fetch failed")},
		referencesByPaper: map[string][]types.Paper{
			"B": {paper("C")},
		},
	}
	st := newFakeStore(seeds)

	result, err := Expand(context.Background(), adapter, st, seeds, 1, 10, 10, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, result.Edges, 1)
	assert.Equal(t, int64(2), result.Edges[0].Src)
}

func TestExpand_EmptyFrontierStopsEarly(t *testing.T) {
	seeds := []seedPaper{{ID: 1, Key: types.PaperKey{Source: "openalex", SourceID: "A"}}}
	adapter := &fakeAdapter{tag: "openalex"}
	st := newFakeStore(seeds)

	result, err := Expand(context.Background(), adapter, st, seeds, 5, 10, 10, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.Edges)
	assert.Empty(t, result.NewPapers)
}
