// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP transport settings.
type HTTPConfig struct {
	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`

	// UserAgent is carried in the config snapshot. The CLI does not send
	// it: it builds the User-Agent header itself, of the form
	// "PaperGraph/<version> (mailto:<email>)".
	UserAgent string `json:"user_agent" mapstructure:"user_agent"`

	// CacheDir is the response cache directory (default "./.papergraph-cache").
	CacheDir string `json:"cache_dir" mapstructure:"cache_dir"`

	// CacheTTL is how long a cache entry remains fresh (default 24h).
	CacheTTL time.Duration `json:"cache_ttl" mapstructure:"cache_ttl"`

	// NoCache disables the response cache entirely.
	NoCache bool `json:"no_cache" mapstructure:"no_cache"`
}

// SimilarityConfig holds the similarity edge builder's settings. The build
// reads TopK and Threshold; the spine alone decides whether similarity
// edges are built, and Enabled is not read.
type SimilarityConfig struct {
	Enabled   bool    `json:"enabled" mapstructure:"enabled"`
	TopK      int     `json:"top_k" mapstructure:"top_k"`
	Threshold float64 `json:"threshold" mapstructure:"threshold"`
}

// ClusteringConfig holds clustering settings carried in the config
// snapshot. The build always runs Louvain and reads neither Enabled nor
// Method.
type ClusteringConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Method  string `json:"method" mapstructure:"method"`
}

// RankingConfig holds the composite scorer's weights.
type RankingConfig struct {
	PagerankWeight  float64 `json:"pagerank_weight" mapstructure:"pagerank_weight"`
	RelevanceWeight float64 `json:"relevance_weight" mapstructure:"relevance_weight"`
	RecencyWeight   float64 `json:"recency_weight" mapstructure:"recency_weight"`
}

// LLMConfig holds settings for the optional enrichment labeler.
type LLMConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Model   string `json:"model" mapstructure:"model"`
	APIKey  string `json:"api_key,omitempty" mapstructure:"api_key"`
}

// Config is the full effective configuration for a build, after CLI, env,
// file, and default layers have been merged.
type Config struct {
	HTTPConfig `json:",inline" mapstructure:",squash"`

	// Source selects the adapter: "openalex" or "s2".
	Source string `json:"source" mapstructure:"source"`

	// Spine selects which edge classes the build emits: "citation",
	// "similarity", "co-citation", "coupling", or "hybrid".
	Spine string `json:"spine" mapstructure:"spine"`

	// Topic is the free-text topic query seed, or empty.
	Topic string `json:"topic,omitempty" mapstructure:"topic"`

	// Titles lists paper-title seeds.
	Titles []string `json:"titles,omitempty" mapstructure:"titles"`

	// DOIs lists DOI seeds.
	DOIs []string `json:"dois,omitempty" mapstructure:"dois"`

	// Depth is the number of BFS expansion iterations.
	Depth int `json:"depth" mapstructure:"depth"`

	// MaxPapers bounds the total paper count persisted by a build.
	MaxPapers int `json:"max_papers" mapstructure:"max_papers"`

	// MaxRefsPerPaper bounds references fetched per paper during BFS.
	MaxRefsPerPaper int `json:"max_refs_per_paper" mapstructure:"max_refs_per_paper"`

	// MaxCitesPerPaper bounds citations fetched per paper (reserved for a
	// citations-driven traversal variant).
	MaxCitesPerPaper int `json:"max_cites_per_paper" mapstructure:"max_cites_per_paper"`

	// YearFrom and YearTo are recorded in the run's config snapshot; no
	// seed search or traversal step filters papers by year.
	YearFrom int `json:"year_from,omitempty" mapstructure:"year_from"`
	YearTo   int `json:"year_to,omitempty" mapstructure:"year_to"`

	// OutPath is the embedded store's file path.
	OutPath string `json:"out_path" mapstructure:"out_path"`

	// LogLevel is one of "error", "warn", "info", "debug".
	LogLevel string `json:"log_level" mapstructure:"log_level"`

	// JSONLogs selects structured JSON log output over console output.
	JSONLogs bool `json:"json_logs" mapstructure:"json_logs"`

	// OpenAlexAPIKey and S2APIKey are optional API keys read from the
	// OPENALEX_API_KEY / S2_API_KEY environment variables (or config).
	OpenAlexAPIKey string `json:"openalex_api_key,omitempty" mapstructure:"openalex_api_key"`
	S2APIKey       string `json:"s2_api_key,omitempty" mapstructure:"s2_api_key"`
	OpenAlexEmail  string `json:"openalex_email,omitempty" mapstructure:"openalex_email"`

	Similarity SimilarityConfig `json:"similarity" mapstructure:"similarity"`
	Clustering ClusteringConfig `json:"clustering" mapstructure:"clustering"`
	Ranking    RankingConfig    `json:"ranking" mapstructure:"ranking"`
	LLM        LLMConfig        `json:"llm" mapstructure:"llm"`
}
