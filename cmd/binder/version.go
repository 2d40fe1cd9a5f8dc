// Version command for the binder CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// binderVersion is the CLI release version.
const binderVersion = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the binder version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("binder", binderVersion)
	},
}
