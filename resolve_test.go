package nuclidedata

import (
	"math"
	"sync"
	"testing"

	"github.com/jhykes/nuclide-data/internal/testutil"
	"github.com/jhykes/nuclide-data/nuclide"
)

var (
	libOnce sync.Once
	lib     *nuclide.Library
	libErr  error
)

// testLibrary loads the fixture datasets once and returns the shared
// Library, so tests sharing the same fixture set avoid redundant
// parsing.
func testLibrary(t testing.TB) *nuclide.Library {
	t.Helper()
	libOnce.Do(func() {
		lib, libErr = Load(MustDir("testdata"))
	})
	if libErr != nil {
		t.Fatalf("failed to load test data: %v", libErr)
	}
	return lib
}

func TestResolveThroughFacade(t *testing.T) {
	l := testLibrary(t)

	tests := []struct {
		name string
		id   any
		z, a int
		e    float64
	}{
		{"name", "U-235", 92, 235, 0},
		{"zaid", 92235, 92, 235, 0},
		{"zaid string", "08016", 8, 16, 0},
		{"metastable name", "Co-60m", 27, 60, 0.0586},
		{"curated default", "Am-242m", 95, 242, 0.04863},
		{"derived default", "Ir-192m", 77, 192, 0.0568},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := l.Resolve(tt.id)
			testutil.NoError(t, err, "Resolve(%v)", tt.id)
			testutil.Equal(t, tt.z, n.Z, "Z")
			testutil.Equal(t, tt.a, n.A, "A")
			testutil.Equal(t, tt.e, n.E, "E")
		})
	}
}

func TestResolveOptionsThroughFacade(t *testing.T) {
	l := testLibrary(t)

	n, err := l.Resolve(ZA{Z: 77, A: 192}, WithEnergy(2.2))
	testutil.NoError(t, err, "Resolve with WithEnergy")
	testutil.Equal(t, 2.2, n.E, "explicit energy")
	testutil.True(t, n.Metastable, "positive energy is metastable")

	n, err = l.Resolve("Co-60", Metastable())
	testutil.NoError(t, err, "Resolve with Metastable")
	testutil.Equal(t, 0.0586, n.E, "default energy applied")
}

func TestWeightLookupThroughFacade(t *testing.T) {
	l := testLibrary(t)

	w, err := l.Weight("H-1")
	testutil.NoError(t, err, "Weight(H-1)")
	testutil.InDelta(t, 1.00782503207, w, 1e-9, "H-1 weight")

	// Elemental weight, no mass number.
	ew, err := l.ElementWeight("H")
	testutil.NoError(t, err, "ElementWeight(H)")
	testutil.InDelta(t, 1.00794, ew, 1e-9, "H standard weight")
}

func TestHalfLifeLookupThroughFacade(t *testing.T) {
	l := testLibrary(t)

	hl, err := l.HalfLife("H-1")
	testutil.NoError(t, err, "HalfLife(H-1)")
	testutil.True(t, math.IsInf(hl, 1), "stable half-life is +Inf")

	lam, err := l.DecayConst("U-235")
	testutil.NoError(t, err, "DecayConst(U-235)")
	testutil.InDelta(t, math.Ln2/2.221e16, lam, 1e-22, "U-235 decay constant")
}

func TestExportedAliases(t *testing.T) {
	l := testLibrary(t)

	// The root package re-exports the model types; values flow between
	// the two without conversion.
	var n Nuclide
	n, err := l.Resolve("U-235")
	testutil.NoError(t, err, "Resolve into aliased type")
	testutil.Equal(t, "U-235", n.String(), "String()")

	var _ *Library = l
	var _ Attribute = AttrWeight
}
