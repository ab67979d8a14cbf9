package nuclide

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Nuclide is a resolved canonical identity: a (Z, A, E) triple with the
// element symbol and whatever repository data enrichment found. An E of
// +Inf means "some excited state, unspecified energy"; metastable names
// with no known default energy stay in that state.
type Nuclide struct {
	Z          int
	A          int
	E          float64 // excitation energy in MeV, 0 for ground state
	Metastable bool
	Element    string // element symbol derived from Z

	// Enrichment from the repository. Absent values leave the Has flag
	// false; a miss never invalidates the identity.
	Weight        float64 // amu
	HasWeight     bool
	DecayConst    float64 // 1/s
	HasDecayConst bool
	Mat           int
	HasMat        bool
}

// NuclideZA implements Identifier, so a Nuclide can be resolved again.
func (n Nuclide) NuclideZA() (int, int) { return n.Z, n.A }

// NuclideE implements EnergyIdentifier.
func (n Nuclide) NuclideE() float64 { return n.E }

// Zaid returns the compact Z*1000+A encoding.
func (n Nuclide) Zaid() int { return n.Z*1000 + n.A }

// String renders the canonical short name: "U-235" for the ground
// state, "Co-60m" for any excited state.
func (n Nuclide) String() string {
	if n.E == 0 {
		return fmt.Sprintf("%s-%d", n.Element, n.A)
	}
	return fmt.Sprintf("%s-%dm", n.Element, n.A)
}

// Equal reports identity equality: (Z, A) must match exactly and the
// excitation energies must be approximately equal. This is looser than
// the repository's exact-energy keying, which is intentional.
func (n Nuclide) Equal(o Nuclide) bool {
	return n.Z == o.Z && n.A == o.A && closeTo(n.E, o.E)
}

// Compare orders identities lexicographically by (Z, A, E).
func (n Nuclide) Compare(o Nuclide) int {
	if c := cmp.Compare(n.Z, o.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(n.A, o.A); c != 0 {
		return c
	}
	return cmp.Compare(n.E, o.E)
}

// Key returns a comparable map key consistent with Equal: identities
// that are Equal always share a Key. Since Equal tolerates small E
// differences, the key covers (Z, A) only and distinct isomers of one
// nuclide collide; callers needing per-isomer keying must disambiguate
// on E themselves.
func (n Nuclide) Key() ZA { return ZA{n.Z, n.A} }

// ResolveOption adjusts identifier resolution.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	e          float64
	hasE       bool
	metastable bool
}

// WithEnergy supplies the excitation energy in MeV. An energy carried
// by the identifier itself takes precedence.
func WithEnergy(e float64) ResolveOption {
	return func(c *resolveConfig) {
		c.e = e
		c.hasE = true
	}
}

// Metastable requests the metastable state. With no concrete energy
// from the identifier, WithEnergy, or the default isomer table, the
// resolved E is +Inf.
func Metastable() ResolveOption {
	return func(c *resolveConfig) { c.metastable = true }
}

// Resolve normalizes any supported identifier shape into a canonical
// Nuclide and enriches it from the repository. See parseID for the
// supported shapes. Enrichment misses (no weight, no decay data, no
// MAT entry) are logged as warnings and never fail the resolution;
// an unknown element or unparseable identifier does.
func (l *Library) Resolve(id any, opts ...ResolveOption) (Nuclide, error) {
	var cfg resolveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	pid, err := l.parseID(id)
	if err != nil {
		return Nuclide{}, err
	}

	e := pid.e
	if !pid.hasE && cfg.hasE {
		e = cfg.e
	}
	// Metastable with no concrete energy: +Inf marks "excited state,
	// energy unspecified" until the default table resolves it.
	if (pid.metastable || cfg.metastable) && e == 0 {
		e = math.Inf(1)
	}

	n := Nuclide{Z: pid.z, A: pid.a, E: e, Metastable: e > 0}

	sym, ok := l.elements.Symbol(n.Z)
	if !ok {
		return Nuclide{}, fmt.Errorf("%w: Z=%d", ErrUnknownElement, n.Z)
	}
	n.Element = sym

	if math.IsInf(n.E, 1) {
		if de, ok := l.DefaultIsomerEnergy(n.String()); ok {
			n.E = de
		}
	}

	l.enrich(&n)
	return n, nil
}

// enrich fills weight, decay constant and MAT from the repository.
// Misses are diagnostics, not errors: the identity stays valid.
func (l *Library) enrich(n *Nuclide) {
	iso, err := l.Isomer(n.Z, n.A, n.E)
	if err != nil {
		l.warn("nuclide data not available", n)
	} else {
		if w, ok := iso.Weight(); ok {
			n.Weight = w.Value()
			n.HasWeight = true
		} else {
			l.warn("nuclide weight not available", n)
		}
		n.DecayConst = iso.DecayConst()
		n.HasDecayConst = true
	}

	if mat, ok := l.Mat(n.Z, n.A, n.Metastable); ok {
		n.Mat = mat
		n.HasMat = true
	} else {
		l.warn("nuclide not on neutron library cross-reference", n)
	}
}

func (l *Library) warn(msg string, n *Nuclide) {
	if l.logger == nil || !l.logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	l.logger.LogAttrs(context.Background(), slog.LevelWarn, msg,
		slog.String("nuclide", n.String()),
		slog.Int("Z", n.Z), slog.Int("A", n.A), slog.Float64("E", n.E))
}
