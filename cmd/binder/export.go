// Export command writes the full dataset to a JSON file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the catalog and collection to JSON",
	Long: `Export writes every card and collection record to a JSON file. The
file carries a unique export id and can be loaded back with import.

Example:
  binder export binder-export.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.ExportCollection(args[0]); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Println("Exported to", args[0])
	return nil
}
