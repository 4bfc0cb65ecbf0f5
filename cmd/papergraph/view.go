// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/store"
)

const viewStubTemplate = `<!DOCTYPE html>
<html>
<head><title>papergraph view</title></head>
<body>
<h1>papergraph</h1>
<p>%d papers, %d edges, %d clusters, %d entities.</p>
<p>Interactive graph rendering is not yet implemented — use
<code>papergraph export --format json</code> for the full graph data.</p>
</body>
</html>
`

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Emit an HTML summary of a built graph",
	Long: `View opens a persisted graph and writes a minimal HTML summary page.
Full interactive graph rendering is out of scope; this emits a stats
summary only.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("input", "", "path to the graph's SQLite database")
	viewCmd.Flags().String("out", "graph.html", "output HTML file path")
	_ = viewCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	outPath, _ := cmd.Flags().GetString("out")

	st, err := store.Open(input, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	var html string
	err = st.WithTx(func(tx *sql.Tx) error {
		stats, err := store.QueryStats(tx)
		if err != nil {
			return err
		}
		html = fmt.Sprintf(viewStubTemplate, stats.PaperCount, stats.EdgeCount, stats.ClusterCount, stats.EntityCount)
		return nil
	})
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing view: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", outPath)
	return nil
}
