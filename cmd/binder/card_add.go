// Card add command creates a new catalog entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/types"
)

var (
	cardAddNumber      string
	cardAddName        string
	cardAddType        string
	cardAddElement     string
	cardAddStrength    string
	cardAddWeakness    string
	cardAddPowerLevel  int64
	cardAddLevel       int64
	cardAddHolo        bool
	cardAddMascot      bool
	cardAddBoxTopper   bool
	cardAddTalent      string
	cardAddEdition     string
	cardAddIllustrator string
)

var cardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a card to the catalog",
	Long: `Add creates a new catalog entry.

Example:
  binder card add --number CH-001A --name Fream --type CHARACTER \
    --element FIRE --strength GRASS --weakness WATER --power-level 8
  binder card add --number GD-001 --name "Fire Guardian" --type GUARDIAN --element FIRE`,
	RunE: runCardAdd,
}

func init() {
	cardAddCmd.Flags().StringVar(&cardAddNumber, "number", "", "card number (required)")
	cardAddCmd.Flags().StringVar(&cardAddName, "name", "", "card name (required)")
	cardAddCmd.Flags().StringVar(&cardAddType, "type", "", "card type: CHARACTER, SUPPORT, GUARDIAN, SHIELD, PROMO (required)")
	cardAddCmd.Flags().StringVar(&cardAddElement, "element", "", "main element")
	cardAddCmd.Flags().StringVar(&cardAddStrength, "strength", "", "element this card is strong against")
	cardAddCmd.Flags().StringVar(&cardAddWeakness, "weakness", "", "element this card is weak against")
	cardAddCmd.Flags().Int64Var(&cardAddPowerLevel, "power-level", 0, "power level (8-10; 0 leaves it unset)")
	cardAddCmd.Flags().Int64Var(&cardAddLevel, "level", 0, "printed level")
	cardAddCmd.Flags().BoolVar(&cardAddHolo, "holo", false, "holographic printing")
	cardAddCmd.Flags().BoolVar(&cardAddMascot, "mascot", false, "mascot variant")
	cardAddCmd.Flags().BoolVar(&cardAddBoxTopper, "box-topper", false, "box topper variant")
	cardAddCmd.Flags().StringVar(&cardAddTalent, "talent", "", "talent text")
	cardAddCmd.Flags().StringVar(&cardAddEdition, "edition", "", "print edition")
	cardAddCmd.Flags().StringVar(&cardAddIllustrator, "illustrator", "", "illustrator name")
	_ = cardAddCmd.MarkFlagRequired("number")
	_ = cardAddCmd.MarkFlagRequired("name")
	_ = cardAddCmd.MarkFlagRequired("type")
}

func runCardAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if ok, reason := backend.ValidateCardNumber(cardAddNumber); !ok {
		return fmt.Errorf("number %q: %s", cardAddNumber, reason)
	}

	card := &types.Card{
		Number:      cardAddNumber,
		Name:        cardAddName,
		CardType:    cardAddType,
		Element:     cardAddElement,
		Strength:    cardAddStrength,
		Weakness:    cardAddWeakness,
		Level:       cardAddLevel,
		IsHolo:      cardAddHolo,
		IsMascot:    cardAddMascot,
		IsBoxTopper: cardAddBoxTopper,
		Talent:      cardAddTalent,
		Edition:     cardAddEdition,
		Illustrator: cardAddIllustrator,
	}
	if cardAddPowerLevel != 0 {
		card.PowerLevel = &cardAddPowerLevel
	}

	table, err := backend.GetTable(types.CardsTable)
	if err != nil {
		return fmt.Errorf("get cards table: %w", err)
	}
	id, err := table.Set(0, card)
	if err != nil {
		return fmt.Errorf("create card: %w", err)
	}

	if flagJSON {
		return printJSON(card)
	}
	fmt.Printf("Created card %d: %s (%s)\n", id, card.Name, card.Number)
	return nil
}
