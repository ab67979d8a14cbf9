package nuclide

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxZ is the highest atomic number carried by the reference data.
const MaxZ = 118

// ErrUnknownElement is returned when a symbol or atomic number has no
// entry in the element catalog.
var ErrUnknownElement = errors.New("unknown element")

var symbolCaser = cases.Title(language.Und)

// NormalizeSymbol canonicalizes an element symbol: "co", "CO" and "Co"
// all normalize to "Co".
func NormalizeSymbol(s string) string {
	return symbolCaser.String(s)
}

// Elements is the reference catalog built from elemental records:
// the Z <-> symbol bidirectional mapping, per-element standard atomic
// weights, and per-isotope relative atomic masses.
type Elements struct {
	symbolByZ map[int]string
	zBySymbol map[string]int
	weights   map[int]Measurement
	relMass   map[ZA]Measurement
}

// NewElements builds the catalog from elemental records. The first
// record seen for an atomic number fixes that element's symbol and
// standard weight; records with Z outside [1, MaxZ] are a build error.
func NewElements(records []ElementRecord) (*Elements, error) {
	e := &Elements{
		symbolByZ: make(map[int]string),
		zBySymbol: make(map[string]int),
		weights:   make(map[int]Measurement),
		relMass:   make(map[ZA]Measurement),
	}
	for i, rec := range records {
		if rec.Z < 1 || rec.Z > MaxZ {
			return nil, fmt.Errorf("element record %d: atomic number %d out of range [1,%d]", i, rec.Z, MaxZ)
		}
		if rec.Symbol == "" {
			return nil, fmt.Errorf("element record %d: missing symbol for Z=%d", i, rec.Z)
		}
		if rec.A < rec.Z {
			return nil, fmt.Errorf("element record %d: mass number %d below atomic number %d", i, rec.A, rec.Z)
		}

		sym := NormalizeSymbol(rec.Symbol)
		if _, seen := e.symbolByZ[rec.Z]; !seen {
			e.symbolByZ[rec.Z] = sym
			if rec.HasStandardWeight {
				e.weights[rec.Z] = rec.StandardWeight
			}
		}
		// Later symbols for a known Z become lookup aliases: the NIST
		// data lists deuterium and tritium under D and T, both Z=1.
		if _, taken := e.zBySymbol[sym]; !taken {
			e.zBySymbol[sym] = rec.Z
		}
		e.relMass[ZA{rec.Z, rec.A}] = rec.RelativeMass
	}
	return e, nil
}

// Symbol returns the element symbol for an atomic number.
func (e *Elements) Symbol(z int) (string, bool) {
	sym, ok := e.symbolByZ[z]
	return sym, ok
}

// Z returns the atomic number for an element symbol. Lookup is
// case-tolerant.
func (e *Elements) Z(symbol string) (int, bool) {
	z, ok := e.zBySymbol[NormalizeSymbol(symbol)]
	return z, ok
}

// StandardWeight returns the element's standard atomic weight in amu,
// if the reference source measured one.
func (e *Elements) StandardWeight(z int) (Measurement, bool) {
	w, ok := e.weights[z]
	return w, ok
}

// RelativeMass returns the relative atomic mass of the isotope (z, a)
// in amu, if the reference source carries it.
func (e *Elements) RelativeMass(z, a int) (Measurement, bool) {
	m, ok := e.relMass[ZA{z, a}]
	return m, ok
}

// Len returns the number of elements in the catalog.
func (e *Elements) Len() int { return len(e.symbolByZ) }
