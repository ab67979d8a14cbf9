package nuclide

// Attribute names a per-isomer quantity that NominalValue can extract.
// Attributes are polymorphic over storage: some are Measurements (the
// nominal value is extracted), some are plain numbers (returned as is).
type Attribute int

const (
	AttrWeight Attribute = iota
	AttrAbundance
	AttrMassExcess
	AttrHalfLife
	AttrDecayConst
)

// String returns the attribute name as used in the source datasets.
func (a Attribute) String() string {
	switch a {
	case AttrWeight:
		return "weight"
	case AttrAbundance:
		return "abundance"
	case AttrMassExcess:
		return "mass-excess"
	case AttrHalfLife:
		return "half-life"
	case AttrDecayConst:
		return "lambda"
	default:
		return "unknown"
	}
}
