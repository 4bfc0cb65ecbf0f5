// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build is the orchestration spine: it sequences seeding, BFS
// citation expansion, analytic edge construction, graph algorithms,
// clustering, scoring, and entity extraction into one build. Seeds and
// BFS results commit as they are persisted; the post-processing stages
// share one transaction.
package build

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/source"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// seedLimit computes clamp(floor(maxPapers * 0.4), 10, 200).
func seedLimit(maxPapers int) int {
	limit := int(float64(maxPapers) * 0.4)
	if limit < 10 {
		return 10
	}
	if limit > 200 {
		return 200
	}
	return limit
}

// seedJob is one unit of concurrent seed resolution: a topic search, a
// title search, or a DOI fetch, tagged with its position in the
// original (topic, titles..., dois...) ordering so results can be
// reassembled deterministically regardless of completion order.
type seedJob struct {
	order  int
	papers []types.Paper
	err    error
	fatal  bool
}

// CollectSeeds resolves the seed paper set from a topic query, a list
// of titles (top-1 search result each), and a list of DOIs (single-
// paper fetch each), fanning all of them out concurrently and then
// merging deterministically by re-sorting into the original (topic,
// titles, dois) order, deduplicated by (source, source_id) and
// truncated to seedLimit(maxPapers).
//
// Search failures (topic, title) are fatal: the build cannot start
// without seeds. A single-paper DOI fetch failure is logged and that
// seed is skipped; the build still proceeds with whatever seeds it has.
func CollectSeeds(ctx context.Context, adapter source.Adapter, topic string, titles, dois []string, maxPapers int, logger zerolog.Logger) ([]types.Paper, error) {
	limit := seedLimit(maxPapers)

	total := len(titles) + len(dois)
	if topic != "" {
		total++
	}

	var wg sync.WaitGroup
	ch := make(chan seedJob, total)

	order := 0
	if topic != "" {
		wg.Add(1)
		go func(order int) {
			defer wg.Done()
			results, err := adapter.SearchByTopic(ctx, topic, limit)
			if err != nil {
				ch <- seedJob{order: order, err: fmt.Errorf("topic search for %q: %w", topic, err), fatal: true}
				return
			}
			ch <- seedJob{order: order, papers: results}
		}(order)
		order++
	}

	for _, title := range titles {
		wg.Add(1)
		go func(order int, title string) {
			defer wg.Done()
			results, err := adapter.SearchByTitle(ctx, title, 1)
			if err != nil {
				ch <- seedJob{order: order, err: fmt.Errorf("title search for %q: %w", title, err), fatal: true}
				return
			}
			if len(results) > 0 {
				ch <- seedJob{order: order, papers: results[:1]}
				return
			}
			ch <- seedJob{order: order}
		}(order, title)
		order++
	}

	for _, doi := range dois {
		wg.Add(1)
		go func(order int, doi string) {
			defer wg.Done()
			p, err := adapter.FetchPaper(ctx, doi)
			if err != nil {
				logger.Warn().Err(err).Str("doi", doi).Msg("doi fetch failed")
				ch <- seedJob{order: order}
				return
			}
			if p != nil {
				ch <- seedJob{order: order, papers: []types.Paper{*p}}
				return
			}
			ch <- seedJob{order: order}
		}(order, doi)
		order++
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	jobs := make([]seedJob, total)
	for j := range ch {
		jobs[j.order] = j
	}

	for _, j := range jobs {
		if j.fatal {
			return nil, j.err
		}
	}

	seen := make(map[types.PaperKey]bool)
	var seeds []types.Paper
	for _, j := range jobs {
		for _, p := range j.papers {
			key := p.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			seeds = append(seeds, p)
		}
	}

	if len(seeds) > limit {
		seeds = seeds[:limit]
	}
	return seeds, nil
}
