package nuclide

import (
	"maps"
	"slices"
)

// DecayMode describes one decay branch of an isomer.
type DecayMode struct {
	BranchFraction float64 // in [0,1]
	HasBranch      bool
	QValue         float64 // energy release in MeV
	HasQValue      bool
}

// Isomer is one energy level of a nuclide: the ground state (E=0) or an
// excited state at excitation energy E. Isomers are created by the
// repository build and are immutable afterwards.
type Isomer struct {
	z, a   int
	e      float64
	symbol string

	massExcess Measurement // MeV
	weight     Measurement // amu, from the element catalog
	hasWeight  bool
	abundance  Measurement // fractional, 0 when unmeasured
	jpi        string

	halfLifeText    string
	halfLife        float64 // seconds, +Inf when stable
	decayConst      float64 // ln2 / halfLife
	stable          bool
	systematicsMass bool

	decayModes map[string]DecayMode
}

// Z returns the proton count.
func (i *Isomer) Z() int { return i.z }

// A returns the mass number.
func (i *Isomer) A() int { return i.a }

// E returns the excitation energy in MeV; 0 for the ground state.
func (i *Isomer) E() float64 { return i.e }

// Symbol returns the element symbol.
func (i *Isomer) Symbol() string { return i.symbol }

// MassExcess returns the mass excess in MeV.
func (i *Isomer) MassExcess() Measurement { return i.massExcess }

// Weight returns the atomic weight in amu, if the element catalog has
// an entry for this (Z, A).
func (i *Isomer) Weight() (Measurement, bool) { return i.weight, i.hasWeight }

// Abundance returns the fractional natural abundance; 0 if unmeasured.
func (i *Isomer) Abundance() Measurement { return i.abundance }

// JPi returns the spin-parity assignment, which may be empty.
func (i *Isomer) JPi() string { return i.jpi }

// HalfLifeText returns the raw half-life field from the source data.
func (i *Isomer) HalfLifeText() string { return i.halfLifeText }

// HalfLife returns the half-life in seconds; +Inf for a stable isomer.
func (i *Isomer) HalfLife() float64 { return i.halfLife }

// DecayConst returns the decay constant ln2/halfLife in 1/s: 0 for a
// stable isomer, +Inf for a state recorded with zero half-life.
func (i *Isomer) DecayConst() float64 { return i.decayConst }

// Stable reports whether the source marked this state STABLE.
func (i *Isomer) Stable() bool { return i.stable }

// SystematicsMass reports whether the mass excess was estimated from
// systematics rather than measured.
func (i *Isomer) SystematicsMass() bool { return i.systematicsMass }

// DecayMode returns the branch for the given decay-mode label.
func (i *Isomer) DecayMode(label string) (DecayMode, bool) {
	dm, ok := i.decayModes[label]
	return dm, ok
}

// DecayModes returns a copy of the decay-mode map.
func (i *Isomer) DecayModes() map[string]DecayMode {
	return maps.Clone(i.decayModes)
}

// Modes returns the decay-mode labels in sorted order.
func (i *Isomer) Modes() []string {
	return slices.Sorted(maps.Keys(i.decayModes))
}
