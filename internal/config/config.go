// Package config handles application configuration and setup
package config

import (
	"github.com/Urethramancer/yarn/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the given program options. Debug wins
// over quiet.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
