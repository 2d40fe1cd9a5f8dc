// Backup command copies the database file to a safe location.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <dir>",
	Short: "Back up the database file",
	Long: `Backup copies the database file into the given directory under a
unique timestamped name.

Example:
  binder backup ~/backups`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	dest, err := backend.Backup(args[0])
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	fmt.Println("Backed up to", dest)
	return nil
}
