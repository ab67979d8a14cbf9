package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// IsotopesResult is the payload of the isotopes command.
type IsotopesResult struct {
	Element     string `json:"element"`
	Z           int    `json:"z"`
	MassNumbers []int  `json:"mass_numbers"`
}

// NewIsotopesCommand creates the isotopes command.
func NewIsotopesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "isotopes <element>",
		Short: "List the known isotopes of an element",
		Long: `List the mass numbers on file for an element, given by symbol
("U", "co") or atomic number (92).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIsotopes(rootOpts, args[0], cmd)
		},
	}
}

func runIsotopes(opts *RootOptions, element string, cmd *cobra.Command) error {
	lib, err := loadLibrary(opts)
	if err != nil {
		return err
	}

	var z int
	if n, err := strconv.Atoi(element); err == nil {
		z = n
	} else {
		var ok bool
		z, ok = lib.Elements().Z(element)
		if !ok {
			return fmt.Errorf("unknown element %q", element)
		}
	}
	sym, ok := lib.Elements().Symbol(z)
	if !ok {
		return fmt.Errorf("unknown atomic number %d", z)
	}

	res := IsotopesResult{Element: sym, Z: z, MassNumbers: lib.Isotopes(z)}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(res, func(w io.Writer) error {
		field(w, "Element", "%s (Z=%d)", res.Element, res.Z)
		for _, a := range res.MassNumbers {
			fmt.Fprintf(w, "  %s-%d\n", res.Element, a)
		}
		if len(res.MassNumbers) == 0 {
			fmt.Fprintln(w, "  (no isotopes on file)")
		}
		return nil
	})
}
