// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/build"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/store"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a paper graph from a topic, title, or DOI seed",
	Long: `Build resolves seed papers from a free-text topic, a list of titles, or a
list of DOIs, expands citations breadth-first up to --depth, derives
analytic edges for the configured --spine, scores papers with PageRank,
clusters them with Louvain community detection, extracts entity mentions,
and persists the whole graph to --out as a single SQLite database.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("topic", "", "free-text topic query seed")
	buildCmd.Flags().StringArray("paper", nil, "paper title seed (repeatable)")
	buildCmd.Flags().StringArray("doi", nil, "DOI seed (repeatable)")
	buildCmd.Flags().String("source", "", "source adapter: openalex or s2")
	buildCmd.Flags().String("spine", "", "edge spine: citation, similarity, co-citation, coupling, or hybrid")
	buildCmd.Flags().Int("depth", 0, "BFS expansion depth")
	buildCmd.Flags().Int("max-papers", 0, "maximum total papers persisted")
	buildCmd.Flags().Int("max-refs", 0, "maximum references fetched per paper")
	buildCmd.Flags().Int("max-cites", 0, "maximum citations fetched per paper (reserved; the build fetches no citations)")
	buildCmd.Flags().Int("year-from", 0, "earliest publication year (recorded in the run config; not applied as a filter)")
	buildCmd.Flags().Int("year-to", 0, "latest publication year (recorded in the run config; not applied as a filter)")
	buildCmd.Flags().String("out", "", "output SQLite database path")
	buildCmd.Flags().String("log-level", "", "log level: error, warn, info, debug")
	buildCmd.Flags().Bool("json-logs", false, "emit structured JSON logs instead of console output")
	buildCmd.Flags().Bool("no-cache", false, "disable the HTTP response cache")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	adapter, err := newAdapter(cfg, logger)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.OutPath, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	result, err := build.Run(cmd.Context(), cfg, adapter, st, logger)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "built graph: %d papers, %d edges, %d clusters, %d entities -> %s\n",
		result.Stats.PaperCount, result.Stats.EdgeCount, result.Stats.ClusterCount, result.Stats.EntityCount, result.OutPath)
	return nil
}
