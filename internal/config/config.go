// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config layers CLI flags over environment variables over a
// discovered JSON config file over built-in defaults, and validates the
// merged result before any I/O begins.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// flagBindings maps each build flag's CLI name (hyphenated, per the
// documented --build surface) to the viper/config key it feeds.
var flagBindings = map[string]string{
	"topic":      "topic",
	"paper":      "titles",
	"doi":        "dois",
	"source":     "source",
	"spine":      "spine",
	"depth":      "depth",
	"max-papers": "max_papers",
	"max-refs":   "max_refs_per_paper",
	"max-cites":  "max_cites_per_paper",
	"year-from":  "year_from",
	"year-to":    "year_to",
	"out":        "out_path",
	"log-level":  "log_level",
	"json-logs":  "json_logs",
	"no-cache":   "no_cache",
}

// Load merges, in ascending precedence, the built-in defaults
// (types.DefaultConfig), a discovered JSON config file, environment
// variables prefixed PAPERGRAPH_, and the bound cobra flags of cmd.
func Load(cmd *cobra.Command) (types.Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v, types.DefaultConfig())

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("papergraph")
		for _, dir := range ancestorDirs() {
			v.AddConfigPath(dir)
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "papergraph"))
		}
	}
	// A missing config file is not an error; defaults and flags still apply.
	_ = v.ReadInConfig()

	v.SetEnvPrefix("PAPERGRAPH")
	v.AutomaticEnv()

	// The API key environment variables are named verbatim by spec, not
	// under the PAPERGRAPH_ prefix AutomaticEnv otherwise applies.
	_ = v.BindEnv("openalex_api_key", "OPENALEX_API_KEY")
	_ = v.BindEnv("s2_api_key", "S2_API_KEY")
	_ = v.BindEnv("llm.api_key", "OPENAI_API_KEY")

	for flagName, key := range flagBindings {
		if f := cmd.Flags().Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, err
			}
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// ancestorDirs returns the working directory followed by each of its
// parents up to the filesystem root, so the config file is discovered
// from the working directory upward rather than only in ".".
func ancestorDirs() []string {
	wd, err := os.Getwd()
	if err != nil {
		return []string{"."}
	}

	var dirs []string
	for {
		dirs = append(dirs, wd)
		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}
	return dirs
}

func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("source", d.Source)
	v.SetDefault("spine", d.Spine)
	v.SetDefault("depth", d.Depth)
	v.SetDefault("max_papers", d.MaxPapers)
	v.SetDefault("max_refs_per_paper", d.MaxRefsPerPaper)
	v.SetDefault("max_cites_per_paper", d.MaxCitesPerPaper)
	v.SetDefault("out_path", d.OutPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("cache_dir", d.CacheDir)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("no_cache", d.NoCache)
	v.SetDefault("similarity.enabled", d.Similarity.Enabled)
	v.SetDefault("similarity.top_k", d.Similarity.TopK)
	v.SetDefault("similarity.threshold", d.Similarity.Threshold)
	v.SetDefault("clustering.enabled", d.Clustering.Enabled)
	v.SetDefault("clustering.method", d.Clustering.Method)
	v.SetDefault("ranking.pagerank_weight", d.Ranking.PagerankWeight)
	v.SetDefault("ranking.relevance_weight", d.Ranking.RelevanceWeight)
	v.SetDefault("ranking.recency_weight", d.Ranking.RecencyWeight)
}
