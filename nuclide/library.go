package nuclide

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Lookup errors. Callers can match them with errors.Is; the wrapped
// message carries the nuclide that missed.
var (
	ErrUnknownNuclide = errors.New("unknown nuclide")
	ErrUnknownIsomer  = errors.New("unknown isomer")
)

type matKey struct {
	z, a       int
	metastable bool
}

// Library is the nuclide repository: (Z,A) -> excitation energy ->
// isomer data, plus the element catalog, the MAT cross-reference and
// the default isomer energy table. It is built once by Build and is
// immutable (and therefore safe for concurrent readers) afterwards.
//
// Within one nuclide, isomers are keyed by the excitation energy
// exactly as read from the source: two records are the same isomer only
// if their E values are bit-for-bit identical. This is deliberately not
// unified with the tolerance-based equality of resolved identities; see
// Nuclide.Equal.
type Library struct {
	elements *Elements
	nuclides map[ZA]map[float64]*Isomer
	isotopes map[int][]int // Z -> sorted, deduplicated mass numbers
	mats     map[matKey]int
	defaults map[string]float64 // "Co-60m" -> E in MeV

	isomerCount int
	diagnostics []Diagnostic
	logger      *slog.Logger // resolve-time warnings; nil disables
}

// Elements returns the reference element catalog.
func (l *Library) Elements() *Elements { return l.elements }

// HasNuclide reports whether any isomer of (z, a) is present.
func (l *Library) HasNuclide(z, a int) bool {
	_, ok := l.nuclides[ZA{z, a}]
	return ok
}

// Isomer returns the isomer of (z, a) at excitation energy e. The
// energy must match the stored level exactly.
func (l *Library) Isomer(z, a int, e float64) (*Isomer, error) {
	levels, ok := l.nuclides[ZA{z, a}]
	if !ok {
		return nil, fmt.Errorf("%w: Z=%d A=%d", ErrUnknownNuclide, z, a)
	}
	iso, ok := levels[e]
	if !ok {
		return nil, fmt.Errorf("%w: Z=%d A=%d E=%g", ErrUnknownIsomer, z, a, e)
	}
	return iso, nil
}

// Ground returns the ground state of (z, a).
func (l *Library) Ground(z, a int) (*Isomer, error) {
	return l.Isomer(z, a, 0)
}

// Isomers returns the energy levels of (z, a) in ascending order, in
// MeV. The ground state, when present, is first.
func (l *Library) Isomers(z, a int) ([]float64, error) {
	levels, ok := l.nuclides[ZA{z, a}]
	if !ok {
		return nil, fmt.Errorf("%w: Z=%d A=%d", ErrUnknownNuclide, z, a)
	}
	es := make([]float64, 0, len(levels))
	for e := range levels {
		es = append(es, e)
	}
	slices.Sort(es)
	return es, nil
}

// Isotopes returns the sorted mass numbers present for an element.
func (l *Library) Isotopes(z int) []int {
	return slices.Clone(l.isotopes[z])
}

// Mat returns the external MAT identifier for a nuclide/metastable
// pair, if the cross-reference lists one.
func (l *Library) Mat(z, a int, metastable bool) (int, bool) {
	mat, ok := l.mats[matKey{z, a, metastable}]
	return mat, ok
}

// DefaultIsomerEnergy returns the excitation energy conventionally
// meant by a metastable short name like "Co-60m", if known. Curated
// entries take precedence over values derived from the level structure.
func (l *Library) DefaultIsomerEnergy(name string) (float64, bool) {
	e, ok := l.defaults[name]
	return e, ok
}

// All iterates every isomer in (Z, A, E) order.
func (l *Library) All() iter.Seq[*Isomer] {
	keys := make([]ZA, 0, len(l.nuclides))
	for za := range l.nuclides {
		keys = append(keys, za)
	}
	slices.SortFunc(keys, func(x, y ZA) int {
		if x.Z != y.Z {
			return x.Z - y.Z
		}
		return x.A - y.A
	})
	return func(yield func(*Isomer) bool) {
		for _, za := range keys {
			es, _ := l.Isomers(za.Z, za.A)
			for _, e := range es {
				if !yield(l.nuclides[za][e]) {
					return
				}
			}
		}
	}
}

// NuclideCount returns the number of distinct (Z, A) pairs.
func (l *Library) NuclideCount() int { return len(l.nuclides) }

// IsomerCount returns the total number of energy levels.
func (l *Library) IsomerCount() int { return l.isomerCount }

// Diagnostics returns non-fatal issues recorded during the build.
func (l *Library) Diagnostics() []Diagnostic {
	return slices.Clone(l.diagnostics)
}
