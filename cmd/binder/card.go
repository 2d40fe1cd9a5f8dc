// Card command group: catalog management.
package main

import "github.com/spf13/cobra"

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage the card catalog",
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardGetCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardDeleteCmd)
}
