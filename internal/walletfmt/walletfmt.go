// Package walletfmt parses the NNDC Nuclear Wallet Cards dataset:
// fixed-width lines, one per (nuclide, decay mode) pair.
package walletfmt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jhykes/nuclide-data/nuclide"
)

// Column layout, as half-open [start, end) byte ranges.
const (
	colA             = 1  // [1,4) mass number
	colAEnd          = 4
	colIsomerFlag    = 4  // 'M' marks an isomeric state
	colZ             = 6  // [6,9) atomic number
	colZEnd          = 9
	colSymbol        = 10 // [10,12)
	colSymbolEnd     = 12
	colJPi           = 16 // [16,26)
	colJPiEnd        = 26
	colDecayMode     = 30 // [30,34)
	colDecayModeEnd  = 34
	colBranch        = 35 // [35,41) branch percentage
	colBranchEnd     = 41
	colExcitation    = 42 // [42,49) MeV
	colExcitationEnd = 49
	colQValue        = 49 // [49,56) MeV
	colQValueEnd     = 56
	colHalfLifeText  = 63 // [63,80)
	colHalfLifeEnd   = 80
	colAbundance     = 81 // [81,96) "percent uncertainty"
	colAbundanceEnd  = 96
	colMassExcess    = 97 // [97,105) MeV
	colMassExcessMid = 105
	colMassExcessEnd = 113 // uncertainty in [105,113)
	colSystematics   = 114 // 'S' marks a mass from systematics
	colHalfLifeSecs  = 124 // [124,133) seconds
	colHalfLifeSEnd  = 133
)

const minLineLen = colHalfLifeSEnd

// stableToken is the literal half-life text of a stable state.
const stableToken = "STABLE"

// Parse reads the wallet cards line by line. A line whose mandatory
// fields (Z, A, excitation energy, mass data, half-life) do not parse
// aborts with an error; optional fields (abundance, Jπ, decay branch)
// default when blank.
//
// logger may be nil.
func Parse(r io.Reader, logger *slog.Logger) ([]nuclide.WalletRecord, error) {
	var records []nuclide.WalletRecord

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("wallet card line %d: %w", lineNo, err)
		}
		records = append(records, rec)
		if logger != nil && logger.Enabled(context.Background(), nuclide.LevelTrace) {
			logger.LogAttrs(context.Background(), nuclide.LevelTrace, "wallet record",
				slog.Int("Z", rec.Z), slog.Int("A", rec.A),
				slog.Float64("E", rec.Excitation), slog.String("mode", rec.DecayMode))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading wallet cards: %w", err)
	}

	if logger != nil && logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "wallet cards parsed",
			slog.Int("records", len(records)))
	}
	return records, nil
}

func parseLine(line string) (nuclide.WalletRecord, error) {
	if len(line) < minLineLen {
		return nuclide.WalletRecord{}, fmt.Errorf("short line: %d bytes, want at least %d", len(line), minLineLen)
	}

	var rec nuclide.WalletRecord
	var err error

	if rec.A, err = fieldInt(line, colA, colAEnd, "mass number"); err != nil {
		return nuclide.WalletRecord{}, err
	}
	if rec.Z, err = fieldInt(line, colZ, colZEnd, "atomic number"); err != nil {
		return nuclide.WalletRecord{}, err
	}
	rec.Isomeric = line[colIsomerFlag] == 'M'
	rec.Symbol = strings.TrimSpace(line[colSymbol:colSymbolEnd])
	rec.JPi = strings.TrimSpace(line[colJPi:colJPiEnd])
	rec.DecayMode = strings.TrimSpace(line[colDecayMode:colDecayModeEnd])

	// Branch percentage: blank or non-numeric means unmeasured.
	if s := strings.TrimSpace(line[colBranch:colBranchEnd]); s != "" {
		if pct, err := strconv.ParseFloat(s, 64); err == nil {
			rec.BranchFraction = pct / 100
			rec.HasBranch = true
		}
	}

	// Excitation energy is mandatory when present; blank means ground
	// state.
	if s := strings.TrimSpace(line[colExcitation:colExcitationEnd]); s != "" {
		rec.Excitation, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nuclide.WalletRecord{}, fmt.Errorf("bad excitation energy %q", s)
		}
	}

	if s := strings.TrimSpace(line[colQValue:colQValueEnd]); s != "" {
		q, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nuclide.WalletRecord{}, fmt.Errorf("bad Q-value %q", s)
		}
		rec.QValue = q
		rec.HasQValue = true
	}

	rec.HalfLifeText = strings.TrimSpace(line[colHalfLifeText:colHalfLifeEnd])
	rec.Stable = rec.HalfLifeText == stableToken

	if rec.Abundance, err = parseAbundance(line[colAbundance:colAbundanceEnd]); err != nil {
		return nuclide.WalletRecord{}, err
	}

	me, err := fieldFloat(line, colMassExcess, colMassExcessMid, "mass excess")
	if err != nil {
		return nuclide.WalletRecord{}, err
	}
	meUnc, err := fieldFloat(line, colMassExcessMid, colMassExcessEnd, "mass excess uncertainty")
	if err != nil {
		return nuclide.WalletRecord{}, err
	}
	rec.MassExcess = nuclide.NewMeasurementUnc(me, meUnc)
	rec.SystematicsMass = line[colSystematics] == 'S'

	if rec.HalfLife, err = fieldFloat(line, colHalfLifeSecs, colHalfLifeSEnd, "half-life"); err != nil {
		return nuclide.WalletRecord{}, err
	}
	if rec.Stable {
		rec.HalfLife = math.Inf(1)
	}

	return rec, nil
}

// parseAbundance reads the "percent uncertainty" abundance field, e.g.
// "99.9885% 70" meaning (99.9885 ± 0.0070)%, returned as a fraction.
// A field starting with 100 is exactly 1; blank means unmeasured (0).
func parseAbundance(field string) (nuclide.Measurement, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return nuclide.Measurement{}, nil
	}
	if strings.HasPrefix(s, "100") {
		return nuclide.NewMeasurement(1), nil
	}

	value, uncDigits, found := strings.Cut(s, "%")
	if !found {
		return nuclide.Measurement{}, fmt.Errorf("bad abundance %q", s)
	}
	value = strings.TrimSpace(value)
	uncDigits = strings.TrimSpace(uncDigits)
	if uncDigits == "" {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nuclide.Measurement{}, fmt.Errorf("bad abundance %q", s)
		}
		return nuclide.NewMeasurement(v / 100), nil
	}
	m, err := nuclide.ParseConcise(value + "(" + uncDigits + ")")
	if err != nil {
		return nuclide.Measurement{}, fmt.Errorf("bad abundance %q: %w", s, err)
	}
	return m.Div(100), nil
}

func fieldInt(line string, start, end int, what string) (int, error) {
	s := strings.TrimSpace(line[start:end])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, s)
	}
	return n, nil
}

func fieldFloat(line string, start, end int, what string) (float64, error) {
	s := strings.TrimSpace(line[start:end])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, s)
	}
	return v, nil
}
