package nuclide

import (
	"errors"
	"slices"
	"testing"
)

func TestLibraryIsomerLookup(t *testing.T) {
	lib := newTestLibrary(t)

	iso, err := lib.Isomer(27, 60, 0.0586)
	if err != nil {
		t.Fatalf("Isomer(27, 60, 0.0586): %v", err)
	}
	if iso.Z() != 27 || iso.A() != 60 || iso.E() != 0.0586 {
		t.Errorf("isomer identity = (%d, %d, %g), want (27, 60, 0.0586)", iso.Z(), iso.A(), iso.E())
	}
	if iso.Symbol() != "Co" {
		t.Errorf("Symbol() = %q, want Co", iso.Symbol())
	}

	_, err = lib.Isomer(27, 61, 0)
	if !errors.Is(err, ErrUnknownNuclide) {
		t.Errorf("Isomer(27, 61, 0) error = %v, want ErrUnknownNuclide", err)
	}

	// The stored level must match exactly; a nearby energy misses.
	_, err = lib.Isomer(27, 60, 0.0587)
	if !errors.Is(err, ErrUnknownIsomer) {
		t.Errorf("Isomer(27, 60, 0.0587) error = %v, want ErrUnknownIsomer", err)
	}
}

func TestLibraryIsomers(t *testing.T) {
	lib := newTestLibrary(t)

	es, err := lib.Isomers(26, 53)
	if err != nil {
		t.Fatalf("Isomers(26, 53): %v", err)
	}
	want := []float64{0, 0.7411, 3.0404}
	if !slices.Equal(es, want) {
		t.Errorf("Isomers(26, 53) = %v, want %v", es, want)
	}

	if _, err := lib.Isomers(26, 99); !errors.Is(err, ErrUnknownNuclide) {
		t.Errorf("Isomers(26, 99) error = %v, want ErrUnknownNuclide", err)
	}
}

func TestLibraryIsotopes(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		z    int
		want []int
	}{
		{1, []int{1, 2, 3, 4}},
		{3, []int{6, 7}},
		{95, []int{241, 242, 243}},
		{50, nil},
	}
	for _, tt := range tests {
		got := lib.Isotopes(tt.z)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Isotopes(%d) = %v, want %v", tt.z, got, tt.want)
		}
	}

	// Callers get a copy.
	as := lib.Isotopes(3)
	as[0] = 99
	if got := lib.Isotopes(3); !slices.Equal(got, []int{6, 7}) {
		t.Errorf("Isotopes(3) mutated through returned slice: %v", got)
	}
}

func TestLibraryMat(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		name       string
		z, a       int
		metastable bool
		want       int
		ok         bool
	}{
		{"U-235", 92, 235, false, 9228, true},
		{"Am-242", 95, 242, false, 9546, true},
		{"Am-242m", 95, 242, true, 9547, true},
		{"Am-241m absent", 95, 241, true, 0, false},
		{"unlisted", 26, 53, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat, ok := lib.Mat(tt.z, tt.a, tt.metastable)
			if ok != tt.ok || mat != tt.want {
				t.Errorf("Mat(%d, %d, %v) = %d, %v, want %d, %v",
					tt.z, tt.a, tt.metastable, mat, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLibraryAllOrder(t *testing.T) {
	lib := newTestLibrary(t)

	var prev *Isomer
	count := 0
	for iso := range lib.All() {
		if prev != nil {
			if iso.Z() < prev.Z() ||
				(iso.Z() == prev.Z() && iso.A() < prev.A()) ||
				(iso.Z() == prev.Z() && iso.A() == prev.A() && iso.E() < prev.E()) {
				t.Fatalf("All() out of order: (%d,%d,%g) after (%d,%d,%g)",
					iso.Z(), iso.A(), iso.E(), prev.Z(), prev.A(), prev.E())
			}
		}
		prev = iso
		count++
	}
	if count != lib.IsomerCount() {
		t.Errorf("All() yielded %d isomers, want %d", count, lib.IsomerCount())
	}
}

func TestLibraryHasNuclide(t *testing.T) {
	lib := newTestLibrary(t)

	if !lib.HasNuclide(92, 238) {
		t.Error("HasNuclide(92, 238) = false")
	}
	if lib.HasNuclide(92, 239) {
		t.Error("HasNuclide(92, 239) = true")
	}
}
