// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/source"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// seedPaper is a persisted seed: its natural key plus the internal id
// assigned by the store.
type seedPaper struct {
	ID  int64
	Key types.PaperKey
}

// edgeSeenKey identifies a directed (src, dst) pair already emitted.
type edgeSeenKey struct {
	src, dst int64
}

// BFSResult accumulates everything the traversal produces: the newly
// inserted papers (internal id assigned), their natural-key index for
// downstream lookups, and the CITES edges emitted.
type BFSResult struct {
	NewPapers    []types.Paper
	AllPaperKeys map[types.PaperKey]int64
	Edges        []types.Edge
}

// PaperStore abstracts the subset of store operations the BFS needs,
// without importing the store package's *sql.Tx type directly into this
// signature. Each method commits durably on its own: the traversal
// persists every paper and edge as it discovers them rather than
// batching the whole crawl into one commit at the end.
type PaperStore interface {
	LookupPaper(key types.PaperKey) (int64, bool, error)
	InsertPaper(p types.Paper) (int64, error)
	InsertEdge(e types.Edge) error
}

// Expand runs the bounded breadth-first citation traversal described in
// the build orchestrator spec: starting from seeds, fetch references per
// frontier paper (bounded by maxRefsPerPaper), inserting previously
// unseen papers only while under maxPapers, and persisting a CITES edge
// immediately for every citer->cited pair not already seen. The
// frontier empties after at most depth iterations.
func Expand(ctx context.Context, adapter source.Adapter, st PaperStore, seeds []seedPaper, depth, maxPapers, maxRefsPerPaper int, logger zerolog.Logger) (*BFSResult, error) {
	visited := make(map[types.PaperKey]bool, len(seeds))
	allKeys := make(map[types.PaperKey]int64, len(seeds))
	for _, s := range seeds {
		visited[s.Key] = true
		allKeys[s.Key] = s.ID
	}

	paperCount := len(seeds)
	edgeSeen := make(map[edgeSeenKey]bool)

	result := &BFSResult{AllPaperKeys: allKeys}

	emit := func(e types.Edge) error {
		if err := st.InsertEdge(e); err != nil {
			return fmt.Errorf("persisting edge %d->%d (%s): %w", e.Src, e.Dst, e.Type, err)
		}
		result.Edges = append(result.Edges, e)
		return nil
	}

	frontier := seeds
	for iteration := 0; iteration < depth; iteration++ {
		if len(frontier) == 0 {
			break
		}

		atCapacity := paperCount >= maxPapers
		var nextFrontier []seedPaper

		for _, citer := range frontier {
			refs, err := adapter.FetchReferences(ctx, citer.Key.SourceID, maxRefsPerPaper)
			if err != nil {
				logger.Warn().Err(err).Str("paper", citer.Key.SourceID).Msg("fetch references failed")
				continue
			}

			for _, ref := range refs {
				refKey := ref.Key()

				if dstID, ok := allKeys[refKey]; ok {
					seenKey := edgeSeenKey{src: citer.ID, dst: dstID}
					if edgeSeen[seenKey] {
						continue
					}
					edgeSeen[seenKey] = true
					if err := emit(citesEdge(citer.ID, dstID, adapter.Tag(), iteration)); err != nil {
						return nil, err
					}
					continue
				}

				if existingID, found, err := st.LookupPaper(refKey); err != nil {
					return nil, fmt.Errorf("looking up paper %s/%s: %w", ref.Source, ref.SourceID, err)
				} else if found {
					allKeys[refKey] = existingID
					visited[refKey] = true
					seenKey := edgeSeenKey{src: citer.ID, dst: existingID}
					if edgeSeen[seenKey] {
						continue
					}
					edgeSeen[seenKey] = true
					if err := emit(citesEdge(citer.ID, existingID, adapter.Tag(), iteration)); err != nil {
						return nil, err
					}
					continue
				}

				if visited[refKey] {
					continue
				}

				if atCapacity {
					continue
				}

				dstID, err := st.InsertPaper(ref)
				if err != nil {
					return nil, fmt.Errorf("inserting paper %s/%s: %w", ref.Source, ref.SourceID, err)
				}
				visited[refKey] = true
				allKeys[refKey] = dstID
				paperCount++
				if paperCount >= maxPapers {
					atCapacity = true
				}

				result.NewPapers = append(result.NewPapers, ref)

				seenKey := edgeSeenKey{src: citer.ID, dst: dstID}
				edgeSeen[seenKey] = true
				if err := emit(citesEdge(citer.ID, dstID, adapter.Tag(), iteration)); err != nil {
					return nil, err
				}

				nextFrontier = append(nextFrontier, seedPaper{ID: dstID, Key: refKey})
			}
		}

		frontier = nextFrontier
	}

	return result, nil
}

func citesEdge(src, dst int64, source string, depth int) types.Edge {
	provenance, _ := json.Marshal(map[string]any{"source": source, "depth": depth})
	return types.Edge{
		Src:        src,
		Dst:        dst,
		Type:       types.EdgeCites,
		Weight:     1,
		Confidence: 1,
		CreatedBy:  types.CreatorAlgo,
		Provenance: string(provenance),
	}
}
