// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the zerolog logger shared across the
// build engine.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the logger's destination, format, and verbosity.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// JSON selects structured JSON output; false uses a human-readable
	// console writer.
	JSON bool

	// Output is the output destination (stdout, stderr).
	Output string
}

// DefaultConfig matches the CLI's own flag defaults.
func DefaultConfig() Config {
	return Config{Level: "info", JSON: false, Output: "stderr"}
}

// New builds a zerolog.Logger from cfg.
func New(cfg Config) zerolog.Logger {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	default:
		output = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	if !cfg.JSON {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)
	return logger.Level(level)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithRun adds the run id and spine to every subsequent log line emitted
// by the returned logger, so a build's output can be grepped by run.
func WithRun(logger zerolog.Logger, runID, spine string) zerolog.Logger {
	return logger.With().Str("run_id", runID).Str("spine", spine).Logger()
}

// WithSource adds the adapter tag to every subsequent log line.
func WithSource(logger zerolog.Logger, source string) zerolog.Logger {
	return logger.With().Str("source", source).Logger()
}
