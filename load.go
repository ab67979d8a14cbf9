package nuclidedata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/jhykes/nuclide-data/internal/endffmt"
	"github.com/jhykes/nuclide-data/internal/nistfmt"
	"github.com/jhykes/nuclide-data/internal/walletfmt"
	"github.com/jhykes/nuclide-data/nuclide"
)

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// loadFromSources runs the full ingestion pipeline: open each dataset
// through the sources, parse it with its format adapter, and merge the
// record sequences into the Library.
func loadFromSources(sources []Source, cfg loadConfig) (*nuclide.Library, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	logger := cfg.logger

	elements, err := parseDataset(sources, DatasetElements, logger, func(r io.Reader) ([]nuclide.ElementRecord, error) {
		return nistfmt.Parse(r, componentLogger(logger, "nist"))
	})
	if err != nil {
		return nil, err
	}

	wallet, err := parseDataset(sources, DatasetWalletCards, logger, func(r io.Reader) ([]nuclide.WalletRecord, error) {
		return walletfmt.Parse(r, componentLogger(logger, "wallet"))
	})
	if err != nil {
		return nil, err
	}

	mats, err := parseDataset(sources, DatasetMatIndex, logger, func(r io.Reader) ([]nuclide.MatRecord, error) {
		return endffmt.Parse(r, componentLogger(logger, "endf"))
	})
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cfg.requireMat {
			return nil, err
		}
		// The cross-reference is optional: the library still works,
		// MAT lookups just miss.
		if logEnabled(logger, slog.LevelDebug) {
			logger.Debug("MAT index not found, continuing without it")
		}
		mats = nil
	}

	return nuclide.Build(elements, wallet, mats, componentLogger(logger, "builder"))
}

// parseDataset opens dataset d through the sources and hands the
// decompressed stream to the format parser.
func parseDataset[T any](sources []Source, d Dataset, logger *slog.Logger, parse func(io.Reader) ([]T, error)) ([]T, error) {
	rc, path, err := openDataset(sources, d)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", d, err)
	}
	defer rc.Close()

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "loading dataset",
			slog.String("dataset", d.String()), slog.String("path", path))
	}

	records, err := parse(rc)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func openDataset(sources []Source, d Dataset) (io.ReadCloser, string, error) {
	for _, src := range sources {
		rc, path, err := src.Open(d)
		if err == nil {
			return rc, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	return nil, "", fs.ErrNotExist
}
