// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/swinstall/swinstall/internal/config"

	"github.com/charmbracelet/log"
)

// configureLogging installs a charm logger as the slog default handler.
// Verbose forces debug level regardless of the configured level.
func configureLogging(w io.Writer, cfg *config.Config) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})

	level := charmLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	slog.SetDefault(slog.New(logger))
}

// charmLevel maps a validated configuration level to the charm logger level.
func charmLevel(l config.LogLevel) log.Level {
	switch l {
	case config.LogLevelDebug:
		return log.DebugLevel
	case config.LogLevelWarn:
		return log.WarnLevel
	case config.LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
