// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "config file")
	cmd.Flags().String("topic", "", "topic query")
	cmd.Flags().String("source", "", "source adapter")
	cmd.Flags().Int("max-papers", 0, "max papers")
	return cmd
}

func TestLoad_FallsBackToDefaultsWithNoFileOrFlags(t *testing.T) {
	cmd := newTestCommand()
	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "openalex", cfg.Source)
	assert.Equal(t, "citation", cfg.Spine)
	assert.Equal(t, 200, cfg.MaxPapers)
}

func TestLoad_FlagOverridesDefault(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("source", "s2"))
	require.NoError(t, cmd.Flags().Set("max-papers", "50"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "s2", cfg.Source)
	assert.Equal(t, 50, cfg.MaxPapers)
}
