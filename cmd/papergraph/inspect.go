// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/corpus"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/scoring"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/store"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print aggregate stats for a built graph",
	Long: `Inspect opens a persisted graph and prints stats(): paper, edge,
cluster, and entity counts, plus the edge count by type. With --topic, it
also ranks papers by the report-only composite score (PageRank, topic
relevance, recency) and prints the top --top papers; this never touches
the stored influence_score, which always holds raw PageRank.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("input", "", "path to the graph's SQLite database")
	inspectCmd.Flags().String("topic", "", "optional topic query to rank papers against")
	inspectCmd.Flags().Int("top", 10, "number of top-ranked papers to print with --topic")
	_ = inspectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	topic, _ := cmd.Flags().GetString("topic")
	top, _ := cmd.Flags().GetInt("top")

	st, err := store.Open(input, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	return st.WithTx(func(tx *sql.Tx) error {
		stats, err := store.QueryStats(tx)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "papers:   %d\n", stats.PaperCount)
		fmt.Fprintf(os.Stdout, "edges:    %d\n", stats.EdgeCount)
		fmt.Fprintf(os.Stdout, "clusters: %d\n", stats.ClusterCount)
		fmt.Fprintf(os.Stdout, "entities: %d\n", stats.EntityCount)
		fmt.Fprintf(os.Stdout, "runs:     %d\n", stats.RunCount)
		for _, edgeType := range sortedKeys(stats.EdgesByType) {
			fmt.Fprintf(os.Stdout, "  %-14s %d\n", edgeType, stats.EdgesByType[edgeType])
		}

		if topic == "" {
			return nil
		}
		return printRanking(tx, topic, top)
	})
}

func printRanking(tx *sql.Tx, topic string, top int) error {
	papers, err := store.AllPapers(tx)
	if err != nil {
		return err
	}

	docs := make([]corpus.Document, len(papers))
	pagerank := make(map[int64]float64, len(papers))
	for i, p := range papers {
		docs[i] = corpus.Document{PaperID: p.ID, Title: p.Title, Abstract: p.Abstract, Keywords: p.Keywords}
		pagerank[p.ID] = p.InfluenceScore
	}
	tfidf := corpus.Build(docs, zerolog.Nop())

	scores := scoring.Compute(papers, pagerank, tfidf, corpus.Tokenize(topic), scoring.DefaultWeights(), time.Now().UTC().Year())
	sort.Slice(scores, func(i, j int) bool { return scores[i].Composite > scores[j].Composite })

	titleByID := make(map[int64]string, len(papers))
	for _, p := range papers {
		titleByID[p.ID] = p.Title
	}

	fmt.Fprintf(os.Stdout, "\ntop papers for %q:\n", topic)
	for i, s := range scores {
		if i >= top {
			break
		}
		fmt.Fprintf(os.Stdout, "  %6.3f  %s\n", s.Composite, titleByID[s.PaperID])
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
