// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphalgo runs PageRank on the directed citation view and
// Louvain community detection on the undirected projection of the full
// edge set.
package graphalgo

import "github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"

// PageRankConfig carries the tunable parameters of the power-iteration
// PageRank computation.
type PageRankConfig struct {
	DampingFactor float64
	MaxIterations int
	Tolerance     float64
}

// DefaultPageRankConfig matches the determinism contract: fixed damping,
// iteration cap, and L1 convergence tolerance so repeated runs over
// identical input converge to the identical score map.
func DefaultPageRankConfig() PageRankConfig {
	return PageRankConfig{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult is the score map plus convergence diagnostics.
type PageRankResult struct {
	Scores    map[int64]float64
	Iterations int
	Converged  bool
}

// PageRank runs power-iteration PageRank over the directed CITES edge
// set for the given paper ids. Papers with no incident CITES edges
// receive a positive teleportation baseline of (1-damping)/N rather than
// zero, since they still receive teleportation mass every iteration.
func PageRank(paperIDs []int64, citesEdges []types.Edge, cfg PageRankConfig) PageRankResult {
	n := len(paperIDs)
	if n == 0 {
		return PageRankResult{Scores: map[int64]float64{}, Converged: true}
	}

	index := make(map[int64]int, n)
	for i, id := range paperIDs {
		index[id] = i
	}

	outLinks := make([][]int, n)
	outDegree := make([]int, n)
	for _, e := range citesEdges {
		src, ok1 := index[e.Src]
		dst, ok2 := index[e.Dst]
		if !ok1 || !ok2 || src == dst {
			continue
		}
		outLinks[src] = append(outLinks[src], dst)
		outDegree[src]++
	}

	scores := make([]float64, n)
	initial := 1.0 / float64(n)
	for i := range scores {
		scores[i] = initial
	}

	teleport := (1 - cfg.DampingFactor) / float64(n)
	result := PageRankResult{Scores: make(map[int64]float64, n)}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		next := make([]float64, n)
		for i := range next {
			next[i] = teleport
		}

		var danglingMass float64
		for i, score := range scores {
			if outDegree[i] == 0 {
				danglingMass += score
				continue
			}
			share := cfg.DampingFactor * score / float64(outDegree[i])
			for _, dst := range outLinks[i] {
				next[dst] += share
			}
		}

		if n > 0 {
			danglingShare := cfg.DampingFactor * danglingMass / float64(n)
			for i := range next {
				next[i] += danglingShare
			}
		}

		var delta float64
		for i := range next {
			diff := next[i] - scores[i]
			if diff < 0 {
				diff = -diff
			}
			delta += diff
		}

		scores = next
		result.Iterations = iter + 1
		if delta < cfg.Tolerance {
			result.Converged = true
			break
		}
	}

	for i, id := range paperIDs {
		result.Scores[id] = scores[i]
	}
	return result
}
