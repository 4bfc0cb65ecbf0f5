// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/config"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/httpx"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/logging"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/source"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// loadConfig merges and validates the effective configuration for cmd,
// failing fast before any network or store I/O — matching the teacher's
// rootCmd.PersistentPreRunE fail-fast pattern.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return types.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process-wide structured logger from cfg.
func newLogger(cfg types.Config) zerolog.Logger {
	return logging.New(logging.Config{Level: cfg.LogLevel, JSON: cfg.JSONLogs, Output: "stderr"})
}

// newAdapter constructs the transport and the source adapter cfg.Source
// selects. The transport's cache is omitted entirely when --no-cache is
// set.
func newAdapter(cfg types.Config, logger zerolog.Logger) (source.Adapter, error) {
	userAgent := fmt.Sprintf("PaperGraph/%s (mailto:%s)", version, cfg.OpenAlexEmail)

	var opts []httpx.Option
	opts = append(opts, httpx.WithLogger(logger))
	if !cfg.NoCache {
		opts = append(opts, httpx.WithCache(httpx.NewCache(cfg.CacheDir, cfg.CacheTTL)))
	}
	transport := httpx.New(cfg.Timeout, userAgent, opts...)

	switch cfg.Source {
	case "openalex":
		return &source.OpenAlex{Transport: transport, APIKey: cfg.OpenAlexAPIKey, Email: cfg.OpenAlexEmail}, nil
	case "s2":
		return &source.SemanticScholar{Transport: transport, APIKey: cfg.S2APIKey}, nil
	default:
		return nil, fmt.Errorf("unrecognized source %q", cfg.Source)
	}
}
