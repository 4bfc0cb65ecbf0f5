// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := map[string]float64{"a": 1, "b": 2}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	u := map[string]float64{"a": 1}
	v := map[string]float64{"b": 1}
	assert.Equal(t, 0.0, Cosine(u, v))
}

func TestCosine_ZeroNormReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(map[string]float64{}, map[string]float64{"a": 1}))
	assert.Equal(t, 0.0, Cosine(map[string]float64{"a": 1}, map[string]float64{}))
}

func TestCosine_PartialOverlap(t *testing.T) {
	u := map[string]float64{"a": 1, "b": 1}
	v := map[string]float64{"a": 1, "c": 1}
	got := Cosine(u, v)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}
