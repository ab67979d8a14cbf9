package nuclide

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The curated default isomer energies ship with the package. Each entry
// maps a canonical metastable short name to the excitation energy in
// MeV that the name conventionally refers to. The curated values
// override the table derived from the level structure at build time.
//
//go:embed default_isomer_energies.yaml
var curatedEnergiesYAML []byte

func curatedIsomerEnergies() (map[string]float64, error) {
	var table map[string]float64
	if err := yaml.Unmarshal(curatedEnergiesYAML, &table); err != nil {
		return nil, fmt.Errorf("parsing curated isomer energies: %w", err)
	}
	return table, nil
}
