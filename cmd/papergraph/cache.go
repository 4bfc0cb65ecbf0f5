// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/httpx"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the HTTP response cache directory",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the response cache",
	RunE:  runCacheClear,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print entry count and size of the response cache",
	RunE:  runCacheStats,
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", "./.papergraph-cache", "response cache directory")
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	rootCmd.AddCommand(cacheCmd)
}

func cacheFromFlags(cmd *cobra.Command) *httpx.Cache {
	dir, _ := cmd.Flags().GetString("cache-dir")
	return httpx.NewCache(dir, 0)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c := cacheFromFlags(cmd)
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Fprintln(os.Stdout, "cache cleared")
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	c := cacheFromFlags(cmd)
	stats, err := c.Stats()
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}
	fmt.Fprintf(os.Stdout, "dir:     %s\n", stats.Dir)
	fmt.Fprintf(os.Stdout, "entries: %d\n", stats.EntryCount)
	fmt.Fprintf(os.Stdout, "bytes:   %d\n", stats.TotalBytes)
	return nil
}
