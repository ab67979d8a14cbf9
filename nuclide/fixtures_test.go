package nuclide

import (
	"math"
	"testing"
)

// Shared fixture records for package tests. The values follow the real
// datasets closely enough that derived quantities are physically
// sensible, but the set is deliberately tiny.

func fixtureElements() []ElementRecord {
	m := func(s string) Measurement {
		v, err := ParseConcise(s)
		if err != nil {
			panic(err)
		}
		return v
	}
	return []ElementRecord{
		{Z: 1, A: 1, Symbol: "H", RelativeMass: m("1.00782503207(10)"), StandardWeight: m("1.00794(7)"), HasStandardWeight: true},
		{Z: 1, A: 2, Symbol: "H", RelativeMass: m("2.0141017778(4)"), StandardWeight: m("1.00794(7)"), HasStandardWeight: true},
		{Z: 1, A: 3, Symbol: "H", RelativeMass: m("3.0160492777(25)"), StandardWeight: m("1.00794(7)"), HasStandardWeight: true},
		{Z: 3, A: 6, Symbol: "Li", RelativeMass: m("6.015122795(16)"), StandardWeight: m("6.941(2)"), HasStandardWeight: true},
		{Z: 3, A: 7, Symbol: "Li", RelativeMass: m("7.01600455(8)"), StandardWeight: m("6.941(2)"), HasStandardWeight: true},
		{Z: 26, A: 53, Symbol: "Fe", RelativeMass: m("52.9453079(19)"), StandardWeight: m("55.845(2)"), HasStandardWeight: true},
		{Z: 27, A: 59, Symbol: "Co", RelativeMass: m("58.9331950(7)"), StandardWeight: m("58.933195(5)"), HasStandardWeight: true},
		{Z: 27, A: 60, Symbol: "Co", RelativeMass: m("59.9338171(7)"), StandardWeight: m("58.933195(5)"), HasStandardWeight: true},
		{Z: 92, A: 235, Symbol: "U", RelativeMass: m("235.0439299(20)"), StandardWeight: m("238.02891(3)"), HasStandardWeight: true},
		{Z: 92, A: 238, Symbol: "U", RelativeMass: m("238.0507882(20)"), StandardWeight: m("238.02891(3)"), HasStandardWeight: true},
		// Americium has no standard atomic weight.
		{Z: 95, A: 241, Symbol: "Am", RelativeMass: m("241.0568291(20)")},
		{Z: 95, A: 242, Symbol: "Am", RelativeMass: m("242.0595492(20)")},
		{Z: 95, A: 243, Symbol: "Am", RelativeMass: m("243.0613811(25)")},
	}
}

func stableRecord(z, a int, sym, jpi string, abundance Measurement) WalletRecord {
	return WalletRecord{
		Z: z, A: a, Symbol: sym, JPi: jpi,
		HalfLifeText: "STABLE", Stable: true, HalfLife: math.Inf(1),
		Abundance: abundance,
	}
}

func fixtureWallet() []WalletRecord {
	return []WalletRecord{
		stableRecord(1, 1, "H", "1/2+", NewMeasurementUnc(0.999885, 0.00007)),
		stableRecord(1, 2, "H", "1+", NewMeasurementUnc(0.000115, 0.00007)),
		{Z: 1, A: 3, Symbol: "H", JPi: "1/2+", DecayMode: "B-", BranchFraction: 1, HasBranch: true,
			QValue: 0.0186, HasQValue: true, HalfLifeText: "12.32 y", HalfLife: 3.888e8},
		// Prompt neutron emitter: zero half-life, not stable.
		{Z: 1, A: 4, Symbol: "H", JPi: "2-", DecayMode: "N", BranchFraction: 1, HasBranch: true,
			HalfLifeText: "1.39E-22 s", HalfLife: 0, SystematicsMass: true},
		stableRecord(3, 6, "Li", "1+", NewMeasurementUnc(0.0759, 0.0004)),
		stableRecord(3, 7, "Li", "3/2-", NewMeasurementUnc(0.9241, 0.0004)),
		{Z: 26, A: 53, Symbol: "Fe", JPi: "7/2-", DecayMode: "EC", BranchFraction: 1, HasBranch: true,
			HalfLifeText: "8.51 m", HalfLife: 510.6},
		{Z: 26, A: 53, Symbol: "Fe", Isomeric: true, Excitation: 0.7411, JPi: "9/2+", DecayMode: "IT",
			BranchFraction: 1, HasBranch: true, HalfLifeText: "1.75 m", HalfLife: 105},
		{Z: 26, A: 53, Symbol: "Fe", Isomeric: true, Excitation: 3.0404, JPi: "19/2-", DecayMode: "IT",
			BranchFraction: 1, HasBranch: true, HalfLifeText: "2.58 m", HalfLife: 154.8},
		stableRecord(27, 59, "Co", "7/2-", NewMeasurement(1)),
		{Z: 27, A: 60, Symbol: "Co", JPi: "5+", DecayMode: "B-", BranchFraction: 1, HasBranch: true,
			QValue: 2.824, HasQValue: true, HalfLifeText: "5.2711 y", HalfLife: 1.663e8},
		{Z: 27, A: 60, Symbol: "Co", Isomeric: true, Excitation: 0.0586, JPi: "2+", DecayMode: "IT",
			BranchFraction: 0.9975, HasBranch: true, QValue: 0.059, HasQValue: true,
			HalfLifeText: "10.467 m", HalfLife: 628},
		{Z: 27, A: 60, Symbol: "Co", Isomeric: true, Excitation: 0.0586, JPi: "2+", DecayMode: "B-",
			BranchFraction: 0.0024, HasBranch: true, QValue: 2.883, HasQValue: true,
			HalfLifeText: "10.467 m", HalfLife: 628},
		{Z: 92, A: 235, Symbol: "U", JPi: "7/2-", DecayMode: "A", BranchFraction: 1, HasBranch: true,
			QValue: 4.678, HasQValue: true, HalfLifeText: "7.04E+8 y", HalfLife: 2.221e16,
			Abundance: NewMeasurementUnc(0.007204, 0.000006)},
		{Z: 92, A: 238, Symbol: "U", JPi: "0+", DecayMode: "A", BranchFraction: 1, HasBranch: true,
			QValue: 4.270, HasQValue: true, HalfLifeText: "4.468E+9 y", HalfLife: 1.41e17,
			Abundance: NewMeasurementUnc(0.992742, 0.00001)},
		{Z: 95, A: 241, Symbol: "Am", JPi: "5/2-", DecayMode: "A", BranchFraction: 1, HasBranch: true,
			QValue: 5.638, HasQValue: true, HalfLifeText: "432.6 y", HalfLife: 1.365e10},
		{Z: 95, A: 242, Symbol: "Am", JPi: "1-", DecayMode: "B-", BranchFraction: 0.827, HasBranch: true,
			QValue: 0.665, HasQValue: true, HalfLifeText: "16.02 h", HalfLife: 5.767e4},
		{Z: 95, A: 242, Symbol: "Am", JPi: "1-", DecayMode: "EC", BranchFraction: 0.173, HasBranch: true,
			QValue: 0.751, HasQValue: true, HalfLifeText: "16.02 h", HalfLife: 5.767e4},
		{Z: 95, A: 242, Symbol: "Am", Isomeric: true, Excitation: 0.04863, JPi: "5-", DecayMode: "IT",
			BranchFraction: 0.9995, HasBranch: true, HalfLifeText: "141 y", HalfLife: 4.449e9},
		{Z: 95, A: 243, Symbol: "Am", JPi: "5/2-", DecayMode: "A", BranchFraction: 1, HasBranch: true,
			QValue: 5.439, HasQValue: true, HalfLifeText: "7370 y", HalfLife: 2.325e11},
	}
}

func fixtureMats() []MatRecord {
	return []MatRecord{
		{Z: 1, A: 1, Mat: 125},
		{Z: 1, A: 2, Mat: 128},
		{Z: 1, A: 3, Mat: 131},
		{Z: 3, A: 6, Mat: 325},
		{Z: 3, A: 7, Mat: 328},
		{Z: 27, A: 59, Mat: 2725},
		{Z: 92, A: 235, Mat: 9228},
		{Z: 92, A: 238, Mat: 9237},
		{Z: 95, A: 241, Mat: 9543},
		{Z: 95, A: 242, Mat: 9546},
		{Z: 95, A: 242, Metastable: true, Mat: 9547},
		{Z: 95, A: 243, Mat: 9549},
	}
}

// newTestLibrary builds the shared fixture library.
func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Build(fixtureElements(), fixtureWallet(), fixtureMats(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return lib
}
