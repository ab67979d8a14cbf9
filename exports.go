package nuclidedata

import "github.com/jhykes/nuclide-data/nuclide"

// Type aliases for public API - all types come from the nuclide subpackage.

// Library is the nuclide repository built by Load.
type Library = nuclide.Library

// Nuclide is a resolved canonical nuclide identity.
type Nuclide = nuclide.Nuclide

// Isomer is one energy level of a nuclide.
type Isomer = nuclide.Isomer

// DecayMode is one decay branch of an isomer.
type DecayMode = nuclide.DecayMode

// Measurement is a numeric value with an optional uncertainty.
type Measurement = nuclide.Measurement

// Elements is the reference element catalog.
type Elements = nuclide.Elements

// ZA identifies a nuclide by proton count and mass number.
type ZA = nuclide.ZA

// ElementRecord is an ingestion-adapter elemental record.
type ElementRecord = nuclide.ElementRecord

// WalletRecord is an ingestion-adapter per-decay-mode record.
type WalletRecord = nuclide.WalletRecord

// MatRecord is an ingestion-adapter MAT cross-reference record.
type MatRecord = nuclide.MatRecord

// Attribute names a per-isomer quantity for nominal-value lookups.
type Attribute = nuclide.Attribute

// Diagnostic records a non-fatal issue found during the build.
type Diagnostic = nuclide.Diagnostic

// Severity classifies a diagnostic.
type Severity = nuclide.Severity

// ResolveOption adjusts identifier resolution.
type ResolveOption = nuclide.ResolveOption

// Attributes understood by Library.NominalValue and Library.Value.
const (
	AttrWeight     = nuclide.AttrWeight
	AttrAbundance  = nuclide.AttrAbundance
	AttrMassExcess = nuclide.AttrMassExcess
	AttrHalfLife   = nuclide.AttrHalfLife
	AttrDecayConst = nuclide.AttrDecayConst
)

// WithEnergy supplies an excitation energy to Resolve.
var WithEnergy = nuclide.WithEnergy

// Metastable requests the metastable state from Resolve.
var Metastable = nuclide.Metastable
