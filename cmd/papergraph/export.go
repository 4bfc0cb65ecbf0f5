// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/store"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// graphExport is the full JSON export payload: every table the store
// holds, joined into one document.
type graphExport struct {
	Papers        []types.Paper       `json:"papers"`
	Edges         []types.Edge        `json:"edges"`
	Clusters      []types.Cluster     `json:"clusters"`
	Entities      []types.Entity      `json:"entities"`
	PaperEntities []types.PaperEntity `json:"paper_entities"`
	Stats         types.Stats         `json:"stats"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a built graph to a file format",
	Long: `Export reads a persisted graph and writes it out in the requested
format. Only --format json is implemented; graphml, gexf, csv, and mermaid
are recognized but not yet produced.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("input", "", "path to the graph's SQLite database")
	exportCmd.Flags().String("format", "json", "output format: json, graphml, gexf, csv, or mermaid")
	exportCmd.Flags().String("out", "", "output file path (default: stdout)")
	_ = exportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	if format != "json" {
		fmt.Fprintf(os.Stderr, "export: format %q not yet implemented — use --format json or `papergraph inspect`\n", format)
		return fmt.Errorf("unsupported export format %q", format)
	}

	st, err := store.Open(input, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	var payload graphExport
	err = st.WithTx(func(tx *sql.Tx) error {
		var err error
		if payload.Papers, err = store.AllPapers(tx); err != nil {
			return err
		}
		if payload.Edges, err = store.AllEdges(tx); err != nil {
			return err
		}
		if payload.Clusters, err = store.AllClusters(tx); err != nil {
			return err
		}
		if payload.Entities, err = store.AllEntities(tx); err != nil {
			return err
		}
		if payload.PaperEntities, err = store.AllPaperEntities(tx); err != nil {
			return err
		}
		payload.Stats, err = store.QueryStats(tx)
		return err
	})
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(append(encoded, '\n'))
		return err
	}
	return os.WriteFile(outPath, encoded, 0o644)
}
