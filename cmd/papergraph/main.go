// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papergraph CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the papergraph CLI.
var rootCmd = &cobra.Command{
	Use:   "papergraph",
	Short: "Build and inspect academic paper citation graphs",
	Long: `papergraph builds a graph of academic papers from a seed topic, title
list, or DOI list: it expands citations breadth-first, derives analytic
edges (textual similarity, co-citation, bibliographic coupling), scores
papers by PageRank, clusters them with Louvain community detection, and
extracts dataset/method/task/metric mentions — all persisted to a single
embedded SQLite database.

Each stage is a subcommand: build, export, view, inspect, and cache.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./papergraph.json or ~/.config/papergraph/papergraph.json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
