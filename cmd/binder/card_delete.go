// Card delete command removes a catalog entry. Collection records for
// the card are left in place; the verify command reports them as
// orphans.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/types"
)

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardDelete,
}

func runCardDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.CardsTable)
	if err != nil {
		return fmt.Errorf("get cards table: %w", err)
	}

	if err := table.Delete(id); err != nil {
		if err == types.ErrNotFound {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("delete card: %w", err)
	}

	fmt.Printf("Deleted card %d\n", id)
	return nil
}
