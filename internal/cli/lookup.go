package cli

import (
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhykes/nuclide-data/nuclide"
)

// LookupResult is the payload of the lookup command.
type LookupResult struct {
	Name       string   `json:"name"`
	Z          int      `json:"z"`
	A          int      `json:"a"`
	E          *float64 `json:"e_mev,omitempty"` // nil when the energy is unspecified
	Zaid       int      `json:"zaid"`
	Metastable bool     `json:"metastable"`
	Weight     *float64 `json:"weight_amu,omitempty"`
	Abundance  *float64 `json:"abundance,omitempty"`
	HalfLife   string   `json:"half_life,omitempty"`
	DecayConst *float64 `json:"decay_const_per_s,omitempty"`
	JPi        string   `json:"jpi,omitempty"`
	Mat        *int     `json:"mat,omitempty"`
	DecayModes []string `json:"decay_modes,omitempty"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <identifier>",
		Short: "Resolve an identifier and print the nuclide's data",
		Long: `Resolve a nuclide identifier and print its reference data.

Identifiers may be names ("U-235", "u235", "235U", "Am-242m"), ZAID
integers (92235), or ZAID strings with leading zeros ("08016").`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args[0], cmd)
		},
	}
}

func runLookup(opts *RootOptions, id string, cmd *cobra.Command) error {
	lib, err := loadLibrary(opts)
	if err != nil {
		return err
	}

	n, err := lib.Resolve(id)
	if err != nil {
		return err
	}
	res := buildLookupResult(lib, n)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(res, func(w io.Writer) error {
		renderLookup(w, res)
		return nil
	})
}

func buildLookupResult(lib *nuclide.Library, n nuclide.Nuclide) LookupResult {
	res := LookupResult{
		Name:       n.String(),
		Z:          n.Z,
		A:          n.A,
		Zaid:       n.Zaid(),
		Metastable: n.Metastable,
	}
	if !math.IsInf(n.E, 1) {
		e := n.E
		res.E = &e
	}
	if n.HasWeight {
		res.Weight = &n.Weight
	}
	if n.HasDecayConst {
		res.DecayConst = &n.DecayConst
	}
	if n.HasMat {
		res.Mat = &n.Mat
	}

	if iso, err := lib.Isomer(n.Z, n.A, n.E); err == nil {
		if ab := iso.Abundance().Value(); ab > 0 {
			res.Abundance = &ab
		}
		res.HalfLife = iso.HalfLifeText()
		res.JPi = iso.JPi()
		res.DecayModes = iso.Modes()
	}
	return res
}

func renderLookup(w io.Writer, res LookupResult) {
	field(w, "Nuclide", "%s (Z=%d, A=%d)", res.Name, res.Z, res.A)
	field(w, "ZAID", "%d", res.Zaid)
	if res.Metastable {
		if res.E == nil {
			field(w, "Excitation", "unspecified")
		} else {
			field(w, "Excitation", "%g MeV", *res.E)
		}
	}
	if res.Weight != nil {
		field(w, "Weight", "%.9g amu", *res.Weight)
	}
	if res.Abundance != nil {
		field(w, "Abundance", "%.6g", *res.Abundance)
	}
	if res.HalfLife != "" {
		field(w, "Half-life", "%s", res.HalfLife)
	}
	if res.DecayConst != nil && *res.DecayConst > 0 && !math.IsInf(*res.DecayConst, 1) {
		field(w, "Decay const", "%.6g 1/s", *res.DecayConst)
	}
	if res.JPi != "" {
		field(w, "Jpi", "%s", res.JPi)
	}
	if len(res.DecayModes) > 0 {
		modes := make([]string, 0, len(res.DecayModes))
		for _, m := range res.DecayModes {
			if m != "" {
				modes = append(modes, m)
			}
		}
		if len(modes) > 0 {
			field(w, "Decay modes", "%s", strings.Join(modes, ", "))
		}
	}
	if res.Mat != nil {
		field(w, "MAT", "%d", *res.Mat)
	}
}
