// Package cli implements the nuclide command-line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	nuclidedata "github.com/jhykes/nuclide-data"
	"github.com/jhykes/nuclide-data/nuclide"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DataDir string // data directory; empty means system search paths
	Format  string // "json" | "text"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the nuclide CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nuclide",
		Short: "Query nuclide weights, abundances and decay data",
		Long: `Query per-nuclide atomic weights, natural abundances, half-lives
and decay data, with tolerant resolution of the common nuclide naming
schemes ("U-235", "u235", 92235, "Am-242m").`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.DataDir, "data", "d", "", "data directory (default: NUCLIDE_DATA_PATH and system locations)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewIsotopesCommand(opts))
	cmd.AddCommand(NewIsomersCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadLibrary builds the library from the --data directory, or from
// the system search paths when no directory is given.
func loadLibrary(opts *RootOptions) (*nuclide.Library, error) {
	var loadOpts []nuclidedata.LoadOption
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		loadOpts = append(loadOpts, nuclidedata.WithLogger(logger))
	}

	if opts.DataDir != "" {
		src, err := nuclidedata.Dir(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("data directory: %w", err)
		}
		return nuclidedata.Load(src, loadOpts...)
	}

	loadOpts = append(loadOpts, nuclidedata.WithSystemPaths())
	return nuclidedata.Load(nil, loadOpts...)
}
