// Collect command group: tracking the physical copies you own. Each
// record is one copy of a catalog card.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/types"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Manage owned copies",
}

var (
	collectAddCardID    int64
	collectAddDate      string
	collectAddMethod    string
	collectAddCondition string
	collectAddHolo      bool
	collectAddPromo     bool
	collectAddMisprint  bool
	collectAddNotes     string
)

var collectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an owned copy of a card",
	Long: `Add records one physical copy of a catalog card.

Example:
  binder collect add --card-id 3 --date 2026-03-14 --method PULLED --condition MINT
  binder collect add --card-id 3 --method TRADED --condition PLAYED --notes "edge wear"`,
	RunE: runCollectAdd,
}

var (
	collectListCardID int64
	collectListMethod string
)

var collectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List owned copies",
	RunE:  runCollectList,
}

var collectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an owned copy record",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectDelete,
}

func init() {
	collectAddCmd.Flags().Int64Var(&collectAddCardID, "card-id", 0, "catalog id of the card (required)")
	collectAddCmd.Flags().StringVar(&collectAddDate, "date", "", "acquisition date (YYYY-MM-DD)")
	collectAddCmd.Flags().StringVar(&collectAddMethod, "method", "", "acquisition method: PULLED, TRADED, GIFTED")
	collectAddCmd.Flags().StringVar(&collectAddCondition, "condition", "", "condition: MINT, NEAR_MINT, PLAYED, DAMAGED")
	collectAddCmd.Flags().BoolVar(&collectAddHolo, "holo", false, "this copy is the holo printing")
	collectAddCmd.Flags().BoolVar(&collectAddPromo, "promo", false, "this copy is a promo printing")
	collectAddCmd.Flags().BoolVar(&collectAddMisprint, "misprint", false, "this copy is a misprint")
	collectAddCmd.Flags().StringVar(&collectAddNotes, "notes", "", "free-form notes")
	_ = collectAddCmd.MarkFlagRequired("card-id")

	collectListCmd.Flags().Int64Var(&collectListCardID, "card-id", 0, "filter by catalog id")
	collectListCmd.Flags().StringVar(&collectListMethod, "method", "", "filter by acquisition method")

	collectCmd.AddCommand(collectAddCmd)
	collectCmd.AddCommand(collectListCmd)
	collectCmd.AddCommand(collectDeleteCmd)
}

func runCollectAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDate(collectAddDate)
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	status := &types.CollectionStatus{
		CardID:            collectAddCardID,
		AcquisitionDate:   date,
		AcquisitionMethod: collectAddMethod,
		Condition:         collectAddCondition,
		IsHolo:            collectAddHolo,
		IsPromo:           collectAddPromo,
		IsMisprint:        collectAddMisprint,
		Notes:             collectAddNotes,
	}

	table, err := backend.GetTable(types.CollectionTable)
	if err != nil {
		return fmt.Errorf("get collection table: %w", err)
	}
	id, err := table.Set(0, status)
	if err != nil {
		return fmt.Errorf("record copy: %w", err)
	}

	if flagJSON {
		return printJSON(status)
	}
	fmt.Printf("Recorded copy %d of card %d\n", id, status.CardID)
	return nil
}

func runCollectList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.CollectionTable)
	if err != nil {
		return fmt.Errorf("get collection table: %w", err)
	}

	filter := types.Filter{}
	if collectListCardID > 0 {
		filter["card_id"] = collectListCardID
	}
	if collectListMethod != "" {
		filter["acquisition_method"] = collectListMethod
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch collection: %w", err)
	}

	records := make([]*types.CollectionStatus, len(entities))
	for i, entity := range entities {
		records[i] = entity.(*types.CollectionStatus)
	}

	if flagJSON {
		return printJSON(records)
	}
	printCollectionTable(records)
	return nil
}

func runCollectDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.CollectionTable)
	if err != nil {
		return fmt.Errorf("get collection table: %w", err)
	}
	if err := table.Delete(id); err != nil {
		if err == types.ErrNotFound {
			return fmt.Errorf("record %d not found", id)
		}
		return fmt.Errorf("delete record: %w", err)
	}

	fmt.Printf("Deleted record %d\n", id)
	return nil
}

// printCollectionTable prints records in a human-readable table.
func printCollectionTable(records []*types.CollectionStatus) {
	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCARD\tACQUIRED\tMETHOD\tCONDITION\tNOTES")
	for _, r := range records {
		acquired := "-"
		if r.AcquisitionDate != nil {
			acquired = r.AcquisitionDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.CardID, acquired, r.AcquisitionMethod, r.Condition, r.Notes)
	}
	w.Flush()
}
