// Package nistfmt parses the NIST atomic weights and isotopic
// compositions dataset: blank-line-separated chunks of "Key = Value"
// lines, one chunk per isotope.
package nistfmt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jhykes/nuclide-data/nuclide"
)

// Field names used by the dataset.
const (
	keyAtomicNumber   = "Atomic Number"
	keyAtomicSymbol   = "Atomic Symbol"
	keyMassNumber     = "Mass Number"
	keyRelativeMass   = "Relative Atomic Mass"
	keyStandardWeight = "Standard Atomic Weight"
)

// Parse reads the whole elemental dataset. Chunks missing a mandatory
// field (atomic number, symbol, mass number) abort the parse; a
// standard atomic weight that is absent or non-numeric (the dataset
// marks some elements unavailable) leaves the record without one.
//
// logger may be nil.
func Parse(r io.Reader, logger *slog.Logger) ([]nuclide.ElementRecord, error) {
	var records []nuclide.ElementRecord
	var chunk []string
	lineNo := 0
	chunkStart := 1

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		rec, err := parseChunk(chunk)
		if err != nil {
			return fmt.Errorf("elemental record at line %d: %w", chunkStart, err)
		}
		records = append(records, rec)
		if logger != nil && logger.Enabled(context.Background(), nuclide.LevelTrace) {
			logger.LogAttrs(context.Background(), nuclide.LevelTrace, "elemental record",
				slog.Int("Z", rec.Z), slog.Int("A", rec.A), slog.String("symbol", rec.Symbol))
		}
		chunk = chunk[:0]
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			chunkStart = lineNo + 1
			continue
		}
		chunk = append(chunk, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading elemental data: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if logger != nil && logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "elemental data parsed",
			slog.Int("records", len(records)))
	}
	return records, nil
}

func parseChunk(lines []string) (nuclide.ElementRecord, error) {
	fields := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nuclide.ElementRecord{}, fmt.Errorf("malformed line %q", line)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	var rec nuclide.ElementRecord
	var err error

	if rec.Z, err = mandatoryInt(fields, keyAtomicNumber); err != nil {
		return nuclide.ElementRecord{}, err
	}
	if rec.A, err = mandatoryInt(fields, keyMassNumber); err != nil {
		return nuclide.ElementRecord{}, err
	}
	rec.Symbol = fields[keyAtomicSymbol]
	if rec.Symbol == "" {
		return nuclide.ElementRecord{}, fmt.Errorf("missing %q", keyAtomicSymbol)
	}

	if v := fields[keyRelativeMass]; v != "" {
		rec.RelativeMass, err = nuclide.ParseConcise(v)
		if err != nil {
			return nuclide.ElementRecord{}, fmt.Errorf("%s: %w", keyRelativeMass, err)
		}
	}

	// Non-numeric standard weights ("unavailable", interval notation)
	// are deliberately dropped; the catalog simply has no weight there.
	if v := fields[keyStandardWeight]; strings.Contains(v, ".") {
		if w, err := nuclide.ParseConcise(v); err == nil {
			rec.StandardWeight = w
			rec.HasStandardWeight = true
		}
	}

	return rec, nil
}

func mandatoryInt(fields map[string]string, key string) (int, error) {
	v, ok := fields[key]
	if !ok || v == "" {
		return 0, fmt.Errorf("missing %q", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad %q value %q", key, v)
	}
	return n, nil
}
