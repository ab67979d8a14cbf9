package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// IsomerLevel is one energy level in the isomers listing.
type IsomerLevel struct {
	E        float64 `json:"e_mev"`
	JPi      string  `json:"jpi,omitempty"`
	HalfLife string  `json:"half_life,omitempty"`
	Stable   bool    `json:"stable,omitempty"`
}

// IsomersResult is the payload of the isomers command.
type IsomersResult struct {
	Name   string        `json:"name"`
	Z      int           `json:"z"`
	A      int           `json:"a"`
	Levels []IsomerLevel `json:"levels"`
}

// NewIsomersCommand creates the isomers command.
func NewIsomersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "isomers <nuclide>",
		Short: "List the energy levels of a nuclide",
		Long: `List the energy levels on file for a nuclide, ground state first,
in ascending excitation energy order.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIsomers(rootOpts, args[0], cmd)
		},
	}
}

func runIsomers(opts *RootOptions, id string, cmd *cobra.Command) error {
	lib, err := loadLibrary(opts)
	if err != nil {
		return err
	}

	n, err := lib.Resolve(id)
	if err != nil {
		return err
	}
	es, err := lib.Isomers(n.Z, n.A)
	if err != nil {
		return err
	}

	res := IsomersResult{
		Name: fmt.Sprintf("%s-%d", n.Element, n.A),
		Z:    n.Z,
		A:    n.A,
	}
	for _, e := range es {
		iso, err := lib.Isomer(n.Z, n.A, e)
		if err != nil {
			return err
		}
		res.Levels = append(res.Levels, IsomerLevel{
			E:        e,
			JPi:      iso.JPi(),
			HalfLife: iso.HalfLifeText(),
			Stable:   iso.Stable(),
		})
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(res, func(w io.Writer) error {
		field(w, "Nuclide", "%s (Z=%d, A=%d)", res.Name, res.Z, res.A)
		for _, lvl := range res.Levels {
			state := lvl.HalfLife
			if lvl.Stable {
				state = "stable"
			}
			fmt.Fprintf(w, "  E=%-10g %-10s %s\n", lvl.E, lvl.JPi, state)
		}
		return nil
	})
}
