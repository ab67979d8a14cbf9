// Command nuclide queries the nuclide reference data from the command
// line.
package main

import (
	"os"

	"github.com/jhykes/nuclide-data/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
