// Stats command reports collection statistics and related listings.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/internal/sqlite"
)

var (
	statsMissing    bool
	statsRecent     int
	statsSets       bool
	statsDuplicates bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Long: `Stats summarizes collection completeness. Flags switch to related
listings instead.

Example:
  binder stats
  binder stats --missing
  binder stats --recent 5
  binder stats --sets
  binder stats --duplicates`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsMissing, "missing", false, "list catalog cards you do not own")
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "list the N most recent acquisitions")
	statsCmd.Flags().BoolVar(&statsSets, "sets", false, "list characters with every variant owned")
	statsCmd.Flags().BoolVar(&statsDuplicates, "duplicates", false, "scan the catalog for suspicious duplicates")
}

func runStats(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	switch {
	case statsMissing:
		return runStatsMissing(backend)
	case statsRecent > 0:
		return runStatsRecent(backend, statsRecent)
	case statsSets:
		return runStatsSets(backend)
	case statsDuplicates:
		return runStatsDuplicates(backend)
	}

	stats, err := backend.Stats()
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}

	fmt.Printf("Collected %d of %d cards (%.1f%%)\n",
		stats.TotalCollected, stats.TotalCards, stats.CompletionPercentage)
	if len(stats.CollectedByType) > 0 {
		types := make([]string, 0, len(stats.CollectedByType))
		for t := range stats.CollectedByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-10s %d\n", t, stats.CollectedByType[t])
		}
	}
	fmt.Printf("Holo copies: %d\n", stats.TotalHolos)
	return nil
}

func runStatsMissing(backend *sqlite.Backend) error {
	missing, err := backend.MissingCards()
	if err != nil {
		return fmt.Errorf("list missing cards: %w", err)
	}
	if flagJSON {
		return printJSON(missing)
	}
	if len(missing) == 0 {
		fmt.Println("Collection complete: no missing cards.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tNAME\tTYPE")
	for _, c := range missing {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Number, c.Name, c.CardType)
	}
	w.Flush()
	return nil
}

func runStatsRecent(backend *sqlite.Backend, limit int) error {
	recent, err := backend.RecentAcquisitions(limit)
	if err != nil {
		return fmt.Errorf("list recent acquisitions: %w", err)
	}
	if flagJSON {
		return printJSON(recent)
	}
	if len(recent) == 0 {
		fmt.Println("No dated acquisitions recorded.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACQUIRED\tNAME\tNUMBER\tMETHOD\tCONDITION")
	for _, row := range recent {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Status.AcquisitionDate.Format("2006-01-02"),
			row.Card.Name, row.Card.Number,
			row.Status.AcquisitionMethod, row.Status.Condition)
	}
	w.Flush()
	return nil
}

func runStatsSets(backend *sqlite.Backend) error {
	sets, err := backend.CompleteSets()
	if err != nil {
		return fmt.Errorf("list complete sets: %w", err)
	}
	if flagJSON {
		return printJSON(sets)
	}
	if len(sets) == 0 {
		fmt.Println("No complete character sets yet.")
		return nil
	}
	for _, name := range sets {
		fmt.Println(name)
	}
	return nil
}

func runStatsDuplicates(backend *sqlite.Backend) error {
	report, err := backend.DuplicateEntries()
	if err != nil {
		return fmt.Errorf("scan duplicates: %w", err)
	}
	if flagJSON {
		return printJSON(report)
	}
	if len(report.DuplicateNames) == 0 && len(report.MismatchedElements) == 0 {
		fmt.Println("No suspicious duplicates found.")
		return nil
	}
	for _, g := range report.DuplicateNames {
		fmt.Printf("%s: %d variants exceeds a complete set\n", g.Name, g.Count)
	}
	for _, m := range report.MismatchedElements {
		fmt.Printf("%s: variants disagree on element: %v\n", m.Name, m.Elements)
	}
	return nil
}
