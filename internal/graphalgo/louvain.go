// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphalgo

import (
	"sort"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// LouvainConfig carries the resolution parameter of modularity
// optimization. There is no random restart: ties are broken by
// ascending node id, so runs over identical input are reproducible
// without a wall-clock seed.
type LouvainConfig struct {
	Resolution float64
}

// DefaultLouvainConfig matches the determinism contract.
func DefaultLouvainConfig() LouvainConfig {
	return LouvainConfig{Resolution: 1.0}
}

// undirectedGraph is an adjacency-list projection built by merging each
// directed pair (u,v) and (v,u) into one undirected, weighted edge.
// Self-loops are dropped.
type undirectedGraph struct {
	nodes     []int64
	index     map[int64]int
	adjacency []map[int]float64
	degree    []float64
	totalWeight float64
}

func buildUndirectedGraph(paperIDs []int64, edges []types.Edge) *undirectedGraph {
	n := len(paperIDs)
	g := &undirectedGraph{
		nodes:     paperIDs,
		index:     make(map[int64]int, n),
		adjacency: make([]map[int]float64, n),
	}
	for i, id := range paperIDs {
		g.index[id] = i
		g.adjacency[i] = make(map[int]float64)
	}

	pairWeight := make(map[[2]int]float64)
	for _, e := range edges {
		u, ok1 := g.index[e.Src]
		v, ok2 := g.index[e.Dst]
		if !ok1 || !ok2 || u == v {
			continue
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		pairWeight[key] += w
	}

	g.degree = make([]float64, n)
	for key, w := range pairWeight {
		u, v := key[0], key[1]
		g.adjacency[u][v] += w
		g.adjacency[v][u] += w
		g.degree[u] += w
		g.degree[v] += w
		g.totalWeight += w
	}

	return g
}

// Louvain runs single-level modularity-optimizing local moving
// (the classic Louvain first phase) on the undirected projection of
// every persisted edge (not only CITES). It does not aggregate into a
// coarsened graph across multiple passes; one converged pass over the
// paper-level graph is sufficient at the corpus sizes this engine
// targets and keeps the result trivially deterministic.
func Louvain(paperIDs []int64, allEdges []types.Edge, cfg LouvainConfig) map[int64][]int64 {
	g := buildUndirectedGraph(paperIDs, allEdges)
	n := len(g.nodes)
	if n == 0 {
		return map[int64][]int64{}
	}

	community := make([]int, n)
	for i := range community {
		community[i] = i
	}
	communityDegree := make([]float64, n)
	copy(communityDegree, g.degree)

	if g.totalWeight == 0 {
		return singletonCommunities(g)
	}
	m2 := 2 * g.totalWeight

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return g.nodes[order[a]] < g.nodes[order[b]] })

	improved := true
	for improved {
		improved = false
		for _, node := range order {
			currentComm := community[node]

			neighborWeight := map[int]float64{}
			for neighbor, w := range g.adjacency[node] {
				neighborWeight[community[neighbor]] += w
			}

			communityDegree[currentComm] -= g.degree[node]

			bestComm := currentComm
			bestGain := neighborWeight[currentComm] - cfg.Resolution*communityDegree[currentComm]*g.degree[node]/m2

			candidates := make([]int, 0, len(neighborWeight))
			for c := range neighborWeight {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			for _, c := range candidates {
				if c == currentComm {
					continue
				}
				gain := neighborWeight[c] - cfg.Resolution*communityDegree[c]*g.degree[node]/m2
				if gain > bestGain {
					bestGain = gain
					bestComm = c
				}
			}

			communityDegree[bestComm] += g.degree[node]
			if bestComm != currentComm {
				community[node] = bestComm
				improved = true
			}
		}
	}

	out := make(map[int64][]int64)
	for i, comm := range community {
		id := g.nodes[i]
		commID := g.nodes[comm]
		out[commID] = append(out[commID], id)
	}
	for _, members := range out {
		sort.Slice(members, func(a, b int) bool { return members[a] < members[b] })
	}
	return out
}

func singletonCommunities(g *undirectedGraph) map[int64][]int64 {
	out := make(map[int64][]int64, len(g.nodes))
	for _, id := range g.nodes {
		out[id] = []int64{id}
	}
	return out
}
