package nuclide

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-record iteration logging during the build.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// metaSuffixes are the suffix letters assigned to excited levels in
// ascending energy order when deriving default isomer names: the first
// excited state of Co-60 is "Co-60m", the second "Co-60n", and so on.
const metaSuffixes = "mnopqrs"

// Build constructs the Library by merging the three record sequences:
// elemental records form the reference catalog, wallet records are
// folded into the (Z,A) -> E -> isomer hierarchy, and MAT records fill
// the external cross-reference. Records with broken mandatory fields
// abort the build; missing optional data degrades to absent values and
// build diagnostics.
//
// logger may be nil to disable logging.
func Build(elements []ElementRecord, wallet []WalletRecord, mats []MatRecord, logger *slog.Logger) (*Library, error) {
	catalog, err := NewElements(elements)
	if err != nil {
		return nil, fmt.Errorf("building element catalog: %w", err)
	}

	lib := &Library{
		elements: catalog,
		nuclides: make(map[ZA]map[float64]*Isomer),
		isotopes: make(map[int][]int),
		mats:     make(map[matKey]int),
		defaults: make(map[string]float64),
		logger:   logger,
	}

	for i, rec := range wallet {
		if err := lib.mergeWalletRecord(i, rec, logger); err != nil {
			return nil, err
		}
	}

	lib.buildIsotopeIndex()
	if err := lib.buildDefaultEnergies(); err != nil {
		return nil, err
	}

	for _, rec := range mats {
		if !lib.HasNuclide(rec.Z, rec.A) {
			lib.diagnostics = append(lib.diagnostics, Diagnostic{
				Severity: SeverityInfo,
				Code:     "mat-unknown-nuclide",
				Message:  fmt.Sprintf("MAT %d references Z=%d A=%d not present in wallet data", rec.Mat, rec.Z, rec.A),
			})
		}
		lib.mats[matKey{rec.Z, rec.A, rec.Metastable}] = rec.Mat
	}

	if logger != nil && logger.Enabled(context.Background(), slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "library built",
			slog.Int("elements", catalog.Len()),
			slog.Int("nuclides", lib.NuclideCount()),
			slog.Int("isomers", lib.IsomerCount()),
			slog.Int("mats", len(lib.mats)))
	}

	return lib, nil
}

// mergeWalletRecord folds one per-decay-mode record into the hierarchy.
// The first record seen for a (Z, A, E) level creates the isomer and
// fixes its nuclide-level fields; every record upserts its decay mode.
func (l *Library) mergeWalletRecord(index int, rec WalletRecord, logger *slog.Logger) error {
	if rec.Z < 0 || rec.A < rec.Z {
		return fmt.Errorf("wallet record %d: invalid nuclide Z=%d A=%d", index, rec.Z, rec.A)
	}
	if rec.Excitation < 0 {
		return fmt.Errorf("wallet record %d: negative excitation energy %g", index, rec.Excitation)
	}

	za := ZA{rec.Z, rec.A}
	levels, ok := l.nuclides[za]
	if !ok {
		levels = make(map[float64]*Isomer)
		l.nuclides[za] = levels
	}

	// Exact float64 keying on the excitation energy as read: a record
	// whose E differs in the last bit is a distinct isomer.
	iso, ok := levels[rec.Excitation]
	if !ok {
		iso = l.newIsomer(rec)
		levels[rec.Excitation] = iso
		l.isomerCount++

		if logger != nil && logger.Enabled(context.Background(), LevelTrace) {
			logger.LogAttrs(context.Background(), LevelTrace, "isomer created",
				slog.Int("Z", rec.Z), slog.Int("A", rec.A),
				slog.Float64("E", rec.Excitation))
		}
	}

	iso.decayModes[rec.DecayMode] = DecayMode{
		BranchFraction: rec.BranchFraction,
		HasBranch:      rec.HasBranch,
		QValue:         rec.QValue,
		HasQValue:      rec.HasQValue,
	}
	return nil
}

// newIsomer copies the nuclide-level fields from a wallet record and
// computes the derived quantities.
func (l *Library) newIsomer(rec WalletRecord) *Isomer {
	iso := &Isomer{
		z:               rec.Z,
		a:               rec.A,
		e:               rec.Excitation,
		symbol:          NormalizeSymbol(rec.Symbol),
		massExcess:      rec.MassExcess,
		abundance:       rec.Abundance,
		jpi:             rec.JPi,
		halfLifeText:    rec.HalfLifeText,
		halfLife:        rec.HalfLife,
		stable:          rec.Stable,
		systematicsMass: rec.SystematicsMass,
		decayModes:      make(map[string]DecayMode),
	}

	if iso.stable {
		iso.halfLife = math.Inf(1)
	}
	switch {
	case iso.halfLife == 0:
		// Zero half-life on a non-stable state means instantaneous
		// decay, not a division error.
		iso.decayConst = math.Inf(1)
	case math.IsInf(iso.halfLife, 1):
		iso.decayConst = 0
	default:
		iso.decayConst = math.Ln2 / iso.halfLife
	}

	if w, ok := l.elements.RelativeMass(rec.Z, rec.A); ok {
		iso.weight = w
		iso.hasWeight = true
	}

	if sym, ok := l.elements.Symbol(rec.Z); ok && iso.symbol != "" && sym != iso.symbol {
		l.diagnostics = append(l.diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     "symbol-mismatch",
			Message:  fmt.Sprintf("Z=%d A=%d: wallet symbol %q differs from catalog symbol %q", rec.Z, rec.A, iso.symbol, sym),
		})
	}

	return iso
}

func (l *Library) buildIsotopeIndex() {
	for za := range l.nuclides {
		l.isotopes[za.Z] = append(l.isotopes[za.Z], za.A)
	}
	for z := range l.isotopes {
		slices.Sort(l.isotopes[z])
		l.isotopes[z] = slices.Compact(l.isotopes[z])
	}
}

// buildDefaultEnergies derives the default isomer energy table from the
// level structure (suffix letters in ascending energy order), then lays
// the curated table over it. Curated entries win.
func (l *Library) buildDefaultEnergies() error {
	for za, levels := range l.nuclides {
		if za.Z == 0 || len(levels) < 2 {
			continue
		}
		sym, ok := l.elements.Symbol(za.Z)
		if !ok {
			continue
		}

		es := make([]float64, 0, len(levels))
		for e := range levels {
			es = append(es, e)
		}
		slices.Sort(es)

		for i, e := range es[1:] {
			if i >= len(metaSuffixes) {
				break
			}
			name := fmt.Sprintf("%s-%d%c", sym, za.A, metaSuffixes[i])
			l.defaults[name] = e
		}
	}

	curated, err := curatedIsomerEnergies()
	if err != nil {
		return err
	}
	for name, e := range curated {
		l.defaults[name] = e
	}
	return nil
}
