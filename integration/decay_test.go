package integration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// DecayTestCase checks half-life and decay-constant data for one state.
type DecayTestCase struct {
	Name     string
	Z, A     int
	E        float64
	Stable   bool
	HalfLife float64 // seconds; ignored when Stable
}

var decayTests = []DecayTestCase{
	{Name: "H-1", Z: 1, A: 1, Stable: true},
	{Name: "H-3", Z: 1, A: 3, HalfLife: 3.888e8},
	{Name: "O-16", Z: 8, A: 16, Stable: true},
	{Name: "Co-60", Z: 27, A: 60, HalfLife: 1.663e8},
	{Name: "Co-60m", Z: 27, A: 60, E: 0.0586, HalfLife: 628},
	{Name: "U-235", Z: 92, A: 235, HalfLife: 2.221e16},
	{Name: "U-238", Z: 92, A: 238, HalfLife: 1.41e17},
	{Name: "Am-242m", Z: 95, A: 242, E: 0.04863, HalfLife: 4.449e9},
}

func TestDecayData(t *testing.T) {
	lib := loadCorpus(t)

	for _, tc := range decayTests {
		t.Run(tc.Name, func(t *testing.T) {
			iso, err := lib.Isomer(tc.Z, tc.A, tc.E)
			require.NoError(t, err)

			require.Equal(t, tc.Stable, iso.Stable())
			if tc.Stable {
				require.True(t, math.IsInf(iso.HalfLife(), 1), "stable half-life")
				require.Zero(t, iso.DecayConst(), "stable decay constant")
				return
			}
			require.InEpsilon(t, tc.HalfLife, iso.HalfLife(), 1e-9)
			require.InEpsilon(t, math.Ln2/tc.HalfLife, iso.DecayConst(), 1e-9)
		})
	}
}

func TestDecayZeroHalfLife(t *testing.T) {
	lib := loadCorpus(t)

	// H-4 is a prompt neutron emitter recorded with zero seconds.
	iso, err := lib.Ground(1, 4)
	require.NoError(t, err)
	require.False(t, iso.Stable())
	require.Zero(t, iso.HalfLife())
	require.True(t, math.IsInf(iso.DecayConst(), 1), "instantaneous decay")
}

func TestDecayBranchFolding(t *testing.T) {
	lib := loadCorpus(t)

	// Co-60m is listed once per branch; both fold into one isomer.
	iso, err := lib.Isomer(27, 60, 0.0586)
	require.NoError(t, err)
	require.Equal(t, []string{"B-", "IT"}, iso.Modes())

	it, ok := iso.DecayMode("IT")
	require.True(t, ok)
	require.InDelta(t, 0.9975, it.BranchFraction, 1e-9)
	require.True(t, it.HasQValue)
	require.InDelta(t, 0.059, it.QValue, 1e-9)

	bm, ok := iso.DecayMode("B-")
	require.True(t, ok)
	require.InDelta(t, 0.0024, bm.BranchFraction, 1e-9)

	// Am-242 ground state splits between beta decay and capture.
	am, err := lib.Ground(95, 242)
	require.NoError(t, err)
	require.Equal(t, []string{"B-", "EC"}, am.Modes())
	b, _ := am.DecayMode("B-")
	ec, _ := am.DecayMode("EC")
	require.InDelta(t, 1.0, b.BranchFraction+ec.BranchFraction, 1e-9,
		"branch fractions should sum to one")
}

func TestDecayAbundances(t *testing.T) {
	lib := loadCorpus(t)

	tests := []struct {
		name      string
		z, a      int
		abundance float64
	}{
		{"H-1", 1, 1, 0.999885},
		{"Li-7", 3, 7, 0.9241},
		{"O-16", 8, 16, 0.99757},
		{"Co-59", 27, 59, 1},
		{"U-235", 92, 235, 0.007204},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iso, err := lib.Ground(tc.z, tc.a)
			require.NoError(t, err)
			require.InDelta(t, tc.abundance, iso.Abundance().Value(), 1e-9)
		})
	}

	// H-3 has no measured natural abundance.
	h3, err := lib.Ground(1, 3)
	require.NoError(t, err)
	require.Zero(t, h3.Abundance().Value())
}

func TestDecayMassExcess(t *testing.T) {
	lib := loadCorpus(t)

	iso, err := lib.Ground(26, 56)
	require.NoError(t, err)
	require.InDelta(t, -60.6054, iso.MassExcess().Value(), 1e-9)
	unc, ok := iso.MassExcess().Uncertainty()
	require.True(t, ok)
	require.InDelta(t, 0.0003, unc, 1e-9)

	h4, err := lib.Ground(1, 4)
	require.NoError(t, err)
	require.True(t, h4.SystematicsMass(), "H-4 mass comes from systematics")
}
