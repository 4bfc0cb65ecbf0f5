// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"fmt"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

var validSources = map[string]bool{"openalex": true, "s2": true}

var validSpines = map[string]bool{
	"citation":    true,
	"similarity":  true,
	"co-citation": true,
	"coupling":    true,
	"hybrid":      true,
}

// Validate rejects configuration errors before any I/O: an unrecognized
// source or spine, the undefined "mixed" source policy, weights that
// don't sum to 1.0, and a seed-less request (no topic, no titles, no
// DOIs).
func Validate(cfg types.Config) error {
	if cfg.Source == "mixed" {
		return fmt.Errorf("source %q is not a defined selection policy; choose openalex or s2", cfg.Source)
	}
	if !validSources[cfg.Source] {
		return fmt.Errorf("unrecognized source %q", cfg.Source)
	}
	if !validSpines[cfg.Spine] {
		return fmt.Errorf("unrecognized spine %q", cfg.Spine)
	}
	if cfg.Topic == "" && len(cfg.Titles) == 0 && len(cfg.DOIs) == 0 {
		return fmt.Errorf("no seeds provided: supply --topic, --paper, or --doi")
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", cfg.Depth)
	}
	if cfg.MaxPapers <= 0 {
		return fmt.Errorf("max_papers must be positive, got %d", cfg.MaxPapers)
	}

	sum := cfg.Ranking.PagerankWeight + cfg.Ranking.RelevanceWeight + cfg.Ranking.RecencyWeight
	const tolerance = 1e-6
	if diff := sum - 1.0; diff > tolerance || diff < -tolerance {
		return fmt.Errorf("ranking weights must sum to 1.0, got %f", sum)
	}

	return nil
}
