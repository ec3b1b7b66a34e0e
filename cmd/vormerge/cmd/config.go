package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/vormerge/merge"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a default configuration file",
	Long: `Write a merge.Config, prefilled with default values, to FILE in
YAML.

If FILE is not provided, 'vormerge.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "vormerge.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, merge.DefaultConfig()))
		fmt.Printf("configuration written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
