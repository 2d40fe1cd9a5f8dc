// Import command loads a JSON export into the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/internal/sqlite"
)

var importStrategy string

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a JSON export",
	Long: `Import merges an export file into the store. Cards are matched by
number; the --strategy flag picks what happens on a match:

  skip     keep the existing card (default)
  update   overwrite the existing card with the file's version
  replace  drop the whole store first, then load the file

Example:
  binder import binder-export.json
  binder import binder-export.json --strategy update`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importStrategy, "strategy", sqlite.MergeSkip, "merge strategy: skip, update, replace")
}

func runImport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	result, err := backend.ImportCollection(args[0], importStrategy)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if flagJSON {
		return printJSON(result)
	}
	fmt.Printf("Imported %d, updated %d, skipped %d, failed %d\n",
		result.Imported, result.Updated, result.Skipped, result.Failed)
	return nil
}
