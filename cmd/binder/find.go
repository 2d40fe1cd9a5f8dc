// Find command searches the catalog by name and shows ownership for
// each variant.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find cards by name with ownership details",
	Long: `Find lists every catalog card matching the name exactly, one line per
owned copy. A card you do not own appears once with no copy details.

Example:
  binder find Fream
  binder find "Fire Guardian" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	rows, err := backend.FindCardsByName(args[0])
	if err != nil {
		return fmt.Errorf("find cards: %w", err)
	}

	if flagJSON {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No cards found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tNAME\tTYPE\tPOWER\tOWNED\tACQUIRED\tCONDITION")
	for _, row := range rows {
		owned, acquired, condition := "no", "-", "-"
		if row.Status != nil {
			owned = "yes"
			if row.Status.AcquisitionDate != nil {
				acquired = row.Status.AcquisitionDate.Format("2006-01-02")
			}
			if row.Status.Condition != "" {
				condition = row.Status.Condition
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Card.ID, row.Card.Number, row.Card.Name, row.Card.CardType,
			powerLevelLabel(row.Card.PowerLevel), owned, acquired, condition)
	}
	w.Flush()
	return nil
}
