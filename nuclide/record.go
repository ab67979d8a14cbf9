package nuclide

// ZA identifies a nuclide by proton count and mass number.
type ZA struct {
	Z, A int
}

// ElementRecord is one elemental-data entry as delivered by an
// ingestion adapter: one record per known isotope of an element.
type ElementRecord struct {
	Z      int    // atomic number
	A      int    // mass number
	Symbol string // element symbol, e.g. "H"

	// RelativeMass is the relative atomic mass of this isotope in amu.
	RelativeMass Measurement

	// StandardWeight is the element's standard atomic weight. Absent
	// when the source marks it unavailable.
	StandardWeight    Measurement
	HasStandardWeight bool
}

// WalletRecord is one per-decay-mode measurement entry as delivered by
// an ingestion adapter. A nuclide appears once per decay branch, so the
// nuclide-level fields repeat across records sharing (Z, A, Excitation).
type WalletRecord struct {
	Z      int
	A      int
	Symbol string

	Isomeric   bool    // source marked this row as an isomeric state
	Excitation float64 // excitation energy E in MeV, 0 for ground state

	JPi string // spin and parity, free-form, may be empty

	DecayMode      string // decay mode label, may be empty
	BranchFraction float64
	HasBranch      bool
	QValue         float64 // MeV
	HasQValue      bool

	HalfLifeText string  // raw half-life field, "STABLE" for stable states
	Stable       bool    // HalfLifeText == "STABLE"
	HalfLife     float64 // seconds; +Inf when stable

	Abundance Measurement // fractional natural abundance in [0,1]

	MassExcess      Measurement // MeV
	SystematicsMass bool        // mass estimated from systematics
}

// MatRecord maps a nuclide (and metastable flag) to its MAT identifier
// in an external neutron-data library.
type MatRecord struct {
	Z          int
	A          int
	Metastable bool
	Mat        int
}
