package nuclide

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when an isomer exists but the requested
// attribute was not measured for it.
var ErrUnavailable = errors.New("attribute unavailable")

// NominalValue indexes the repository at (z, a)[e] and extracts the
// nominal value of the attribute. Measurement-valued attributes yield
// their nominal value; plain numeric attributes pass through unchanged.
// A missing nuclide or energy level is an error, not a default.
func (l *Library) NominalValue(z, a int, e float64, attr Attribute) (float64, error) {
	iso, err := l.Isomer(z, a, e)
	if err != nil {
		return 0, err
	}
	switch attr {
	case AttrWeight:
		w, ok := iso.Weight()
		if !ok {
			return 0, fmt.Errorf("%w: %s for Z=%d A=%d", ErrUnavailable, attr, z, a)
		}
		return w.Value(), nil
	case AttrAbundance:
		return iso.Abundance().Value(), nil
	case AttrMassExcess:
		return iso.MassExcess().Value(), nil
	case AttrHalfLife:
		return iso.HalfLife(), nil
	case AttrDecayConst:
		return iso.DecayConst(), nil
	default:
		return 0, fmt.Errorf("unknown attribute %d", int(attr))
	}
}

// Value resolves the identifier like Resolve and returns the nominal
// value of the attribute for the resolved isomer.
func (l *Library) Value(id any, attr Attribute, opts ...ResolveOption) (float64, error) {
	n, err := l.Resolve(id, opts...)
	if err != nil {
		return 0, err
	}
	return l.NominalValue(n.Z, n.A, n.E, attr)
}

// Weight returns the atomic weight in amu for the resolved nuclide.
func (l *Library) Weight(id any, opts ...ResolveOption) (float64, error) {
	return l.Value(id, AttrWeight, opts...)
}

// DecayConst returns the decay constant in 1/s for the resolved nuclide.
func (l *Library) DecayConst(id any, opts ...ResolveOption) (float64, error) {
	return l.Value(id, AttrDecayConst, opts...)
}

// HalfLife returns the half-life in seconds for the resolved nuclide.
func (l *Library) HalfLife(id any, opts ...ResolveOption) (float64, error) {
	return l.Value(id, AttrHalfLife, opts...)
}

// ElementWeight returns the elemental standard atomic weight for an
// element given by symbol (string) or atomic number (int). This is the
// no-mass-number form of the lookup API: the value comes from the
// reference catalog, not from any particular isotope.
func (l *Library) ElementWeight(symbolOrZ any) (float64, error) {
	var z int
	switch v := symbolOrZ.(type) {
	case int:
		z = v
	case string:
		var ok bool
		z, ok = l.elements.Z(v)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownElement, v)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported element key type %T", ErrBadIdentifier, symbolOrZ)
	}
	w, ok := l.elements.StandardWeight(z)
	if !ok {
		return 0, fmt.Errorf("%w: standard weight for Z=%d", ErrUnavailable, z)
	}
	return w.Value(), nil
}
