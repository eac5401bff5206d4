// Package logging builds the slog logger that rides the command context.
// Diagnostics go to the command's error stream; stdout stays reserved for
// results.
package logging

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// Flag names registered on the root command.
const (
	FlagLevel  = "loglevel"
	FlagFormat = "logformat"
)

// RegisterFlags adds the logging flags to cmd's persistent flag set.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagLevel, "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String(FlagFormat, "text", "Log format: text, json")
}

// NewLogger builds a logger from cmd's logging flags, writing to cmd's
// error stream.
func NewLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString(FlagLevel)
	format, _ := cmd.Flags().GetString(FlagFormat)

	level, err := parseLevel(levelName)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	w := cmd.ErrOrStderr()

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %q (must be text or json)", format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q (must be debug, info, warn, or error)", s)
	}
}
