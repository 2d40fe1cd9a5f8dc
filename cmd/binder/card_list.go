// Card list command queries the catalog.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/types"
)

var (
	cardListName    string
	cardListType    string
	cardListElement string
	cardListLimit   int
	cardListOffset  int
)

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog cards",
	Long: `List fetches catalog cards, optionally filtered.

Example:
  binder card list
  binder card list --type CHARACTER --element FIRE
  binder card list --limit 20 --json`,
	RunE: runCardList,
}

func init() {
	cardListCmd.Flags().StringVar(&cardListName, "name", "", "filter by exact name")
	cardListCmd.Flags().StringVar(&cardListType, "type", "", "filter by card type")
	cardListCmd.Flags().StringVar(&cardListElement, "element", "", "filter by element")
	cardListCmd.Flags().IntVar(&cardListLimit, "limit", 0, "maximum number of results (0 = no limit)")
	cardListCmd.Flags().IntVar(&cardListOffset, "offset", 0, "number of results to skip")
}

func runCardList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.CardsTable)
	if err != nil {
		return fmt.Errorf("get cards table: %w", err)
	}

	filter := types.Filter{}
	if cardListName != "" {
		filter["name"] = cardListName
	}
	if cardListType != "" {
		filter["card_type"] = cardListType
	}
	if cardListElement != "" {
		filter["element"] = cardListElement
	}
	if cardListLimit > 0 {
		filter["limit"] = cardListLimit
	}
	if cardListOffset > 0 {
		filter["offset"] = cardListOffset
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch cards: %w", err)
	}

	cards := make([]*types.Card, len(entities))
	for i, entity := range entities {
		cards[i] = entity.(*types.Card)
	}

	if flagJSON {
		return printJSON(cards)
	}
	printCardTable(cards)
	return nil
}

// printCardTable prints cards in a human-readable table.
func printCardTable(cards []*types.Card) {
	if len(cards) == 0 {
		fmt.Println("No cards found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tNAME\tTYPE\tELEMENT\tPOWER")
	for _, c := range cards {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Number, c.Name, c.CardType, c.Element, powerLevelLabel(c.PowerLevel))
	}
	w.Flush()
}
