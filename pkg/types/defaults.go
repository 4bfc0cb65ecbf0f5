// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultConfig returns the built-in default configuration, the lowest
// layer in the CLI -> env -> file -> defaults precedence chain.
func DefaultConfig() Config {
	return Config{
		HTTPConfig: HTTPConfig{
			Timeout:  30 * time.Second,
			CacheDir: "./.papergraph-cache",
			CacheTTL: 24 * time.Hour,
		},
		Source:           "openalex",
		Spine:            "citation",
		Depth:            2,
		MaxPapers:        200,
		MaxRefsPerPaper:  20,
		MaxCitesPerPaper: 20,
		OutPath:          "papergraph.db",
		LogLevel:         "info",
		Similarity: SimilarityConfig{
			Enabled:   true,
			TopK:      10,
			Threshold: 0.25,
		},
		Clustering: ClusteringConfig{
			Enabled: true,
			Method:  "louvain_citation",
		},
		Ranking: RankingConfig{
			PagerankWeight:  0.5,
			RelevanceWeight: 0.3,
			RecencyWeight:   0.2,
		},
	}
}
