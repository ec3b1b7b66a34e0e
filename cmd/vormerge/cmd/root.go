package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "vormerge",
	Short: "merge planar Voronoi diagrams",
	Long: `vormerge is the command-line front end accompanying the vormerge
library:
	- build half-diagrams from site lists (YAML) with a brute-force
	  reference builder,
	- merge two half-diagrams with the dividing-chain algorithm,
	- validate an existing diagram file against its invariants,
	- write a default configuration file.`,
}

// Execute adds all child commands to RootCmd and executes it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
