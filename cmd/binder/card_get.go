// Card get command retrieves a catalog entry by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/types"
)

var cardGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a card by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardGet,
}

func runCardGet(cmd *cobra.Command, args []string) error {
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

	entity, err := table.Get(id)
	if err != nil {
		if err == types.ErrNotFound {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("get card: %w", err)
	}
	card := entity.(*types.Card)

	if flagJSON {
		return printJSON(card)
	}
	printCardDetails(card)
	return nil
}

// printCardDetails prints one card in a human-readable form.
func printCardDetails(card *types.Card) {
	fmt.Printf("Card %d: %s\n", card.ID, card.Name)
	fmt.Printf("  number:      %s\n", card.Number)
	fmt.Printf("  type:        %s\n", card.CardType)
	if card.Element != "" {
		fmt.Printf("  element:     %s\n", card.Element)
	}
	if card.Strength != "" {
		fmt.Printf("  strength:    %s\n", card.Strength)
	}
	if card.Weakness != "" {
		fmt.Printf("  weakness:    %s\n", card.Weakness)
	}
	if card.PowerLevel != nil {
		fmt.Printf("  power level: %d\n", *card.PowerLevel)
	}
	if card.Level != 0 {
		fmt.Printf("  level:       %d\n", card.Level)
	}
	var variants []string
	if card.IsHolo {
		variants = append(variants, "holo")
	}
	if card.IsMascot {
		variants = append(variants, "mascot")
	}
	if card.IsBoxTopper {
		variants = append(variants, "box topper")
	}
	for _, v := range variants {
		fmt.Printf("  variant:     %s\n", v)
	}
	if card.Talent != "" {
		fmt.Printf("  talent:      %s\n", card.Talent)
	}
	if card.Edition != "" {
		fmt.Printf("  edition:     %s\n", card.Edition)
	}
	if card.Illustrator != "" {
		fmt.Printf("  illustrator: %s\n", card.Illustrator)
	}
}
