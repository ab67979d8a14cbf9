// Package nuclidedata provides access to nuclide atomic weights,
// natural abundances, half-lives and decay data, with tolerant
// resolution of the many common nuclide naming schemes.
//
// Data comes from the NIST atomic weights dataset and the NNDC Nuclear
// Wallet Cards, optionally cross-referenced against an ENDF neutron
// library MAT listing.
package nuclidedata

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jhykes/nuclide-data/nuclide"
)

// ErrNoSources is returned when Load is called with no sources.
var ErrNoSources = errors.New("no data sources provided")

// LevelTrace is a custom log level more verbose than Debug. Use for
// per-record iteration logging (elemental chunks, wallet lines).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = nuclide.LevelTrace

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger      *slog.Logger
	systemPaths bool
	requireMat  bool
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// RequireMatIndex makes a missing MAT cross-reference dataset a load
// error. By default the library builds without one and MAT lookups
// simply miss.
func RequireMatIndex() LoadOption {
	return func(c *loadConfig) { c.requireMat = true }
}

// Load reads the datasets from the given source, builds the reference
// catalog and merges the measurement records into a nuclide Library.
// Use Multi() to combine multiple sources.
//
// Example:
//
//	lib, err := nuclidedata.Load(
//	    nuclidedata.MustDir("./data"),
//	    nuclidedata.WithLogger(slog.Default()),
//	)
func Load(source Source, opts ...LoadOption) (*nuclide.Library, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var sources []Source
	if source != nil {
		sources = append(sources, source)
	}
	if cfg.systemPaths {
		sources = append(sources, discoverSystemSources(cfg.logger)...)
	}
	return loadFromSources(sources, cfg)
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
