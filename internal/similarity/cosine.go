// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity builds SIMILAR_TEXT edges from the TF-IDF corpus via
// pairwise cosine similarity.
package similarity

import "math"

// Cosine computes the cosine similarity of two sparse term-weight
// vectors, iterating the smaller vector for efficiency. Returns 0 when
// either vector has zero norm.
func Cosine(u, v map[string]float64) float64 {
	if len(u) > len(v) {
		u, v = v, u
	}

	var dot float64
	for term, uw := range u {
		if vw, ok := v[term]; ok {
			dot += uw * vw
		}
	}

	normU := norm(u)
	normV := norm(v)
	if normU == 0 || normV == 0 {
		return 0
	}
	return dot / (normU * normV)
}

func norm(vec map[string]float64) float64 {
	var sumSquares float64
	for _, w := range vec {
		sumSquares += w * w
	}
	return math.Sqrt(sumSquares)
}
