// Package endffmt parses the ENDF neutron library listing that maps
// nuclides to their MAT identifiers.
package endffmt

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

// Column layout, as half-open [start, end) byte ranges.
const (
	colZ        = 6 // [6,9)
	colZEnd     = 9
	colA        = 13 // [13,16)
	colAEnd     = 16
	colMetaFlag = 16 // 'M' marks the metastable entry
	colMat      = 72 // [72,76)
	colMatEnd   = 76
)

const minLineLen = colMatEnd

// Parse reads the MAT cross-reference. Comment lines start with '#';
// blank lines are skipped; anything else must parse or the whole read
// fails.
//
// logger may be nil.
func Parse(r io.Reader, logger *slog.Logger) ([]nuclide.MatRecord, error) {
	var records []nuclide.MatRecord

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("MAT list line %d: %w", lineNo, err)
		}
		records = append(records, rec)
		if logger != nil && logger.Enabled(context.Background(), nuclide.LevelTrace) {
			logger.LogAttrs(context.Background(), nuclide.LevelTrace, "MAT record",
				slog.Int("Z", rec.Z), slog.Int("A", rec.A),
				slog.Bool("metastable", rec.Metastable), slog.Int("mat", rec.Mat))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading MAT list: %w", err)
	}

	if logger != nil && logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "MAT list parsed",
			slog.Int("records", len(records)))
	}
	return records, nil
}

func parseLine(line string) (nuclide.MatRecord, error) {
	if len(line) < minLineLen {
		return nuclide.MatRecord{}, fmt.Errorf("short line: %d bytes, want at least %d", len(line), minLineLen)
	}

	var rec nuclide.MatRecord
	var err error
	if rec.Z, err = fieldInt(line, colZ, colZEnd, "atomic number"); err != nil {
		return nuclide.MatRecord{}, err
	}
	if rec.A, err = fieldInt(line, colA, colAEnd, "mass number"); err != nil {
		return nuclide.MatRecord{}, err
	}
	rec.Metastable = line[colMetaFlag] == 'M'
	if rec.Mat, err = fieldInt(line, colMat, colMatEnd, "MAT"); err != nil {
		return nuclide.MatRecord{}, err
	}
	return rec, nil
}

func fieldInt(line string, start, end int, what string) (int, error) {
	s := strings.TrimSpace(line[start:end])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, s)
	}
	return n, nil
}
