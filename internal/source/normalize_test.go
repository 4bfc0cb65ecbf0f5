// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"abs url", "https://arxiv.org/abs/1706.03762", "1706.03762"},
		{"arxiv tag", "arXiv:1706.03762v2", "1706.03762v2"},
		{"bare id", "see 1706.03762 for details", "1706.03762"},
		{"no match", "10.1234/not.arxiv", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractArxivID(tt.text))
		})
	}
}

func TestStripDOIPrefix(t *testing.T) {
	assert.Equal(t, "10.1234/x", StripDOIPrefix("https://doi.org/10.1234/x"))
	assert.Equal(t, "10.1234/x", StripDOIPrefix("doi.org/10.1234/x"))
	assert.Equal(t, "10.1234/x", StripDOIPrefix("10.1234/x"))
	assert.Equal(t, "", StripDOIPrefix(""))
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Untitled", DefaultTitle(""))
	assert.Equal(t, "Untitled", DefaultTitle("   "))
	assert.Equal(t, "Real Title", DefaultTitle("Real Title"))
}

func TestMarshalStableJSON(t *testing.T) {
	assert.Equal(t, "", MarshalStableJSON(nil))
	assert.Equal(t, "", MarshalStableJSON([]string{}))
	assert.JSONEq(t, `["a","b"]`, MarshalStableJSON([]string{"b", "a"}))
}

func TestReconstructAbstract(t *testing.T) {
	tests := []struct {
		name  string
		index map[string][]int
		want  string
	}{
		{"empty map", map[string][]int{}, ""},
		{"nil map", nil, ""},
		{"single word", map[string][]int{"hello": {0}}, "hello"},
		{
			"multi-word ordered",
			map[string][]int{"We": {0}, "propose": {1}, "a": {2}, "new": {3}, "method": {4}},
			"We propose a new method",
		},
		{
			"repeated word across positions",
			map[string][]int{"the": {0, 4}, "cat": {1}, "sat": {2}, "on": {3}, "mat": {5}},
			"the cat sat on the mat",
		},
		{
			"negative positions ignored",
			map[string][]int{"valid": {0}, "bad": {-1}},
			"valid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconstructAbstract(tt.index))
		})
	}
}
