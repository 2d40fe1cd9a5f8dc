// Verify command runs the integrity validator over the full dataset.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckmint/binder/pkg/integrity"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify catalog and collection integrity",
	Long: `Verify checks the whole dataset for structural problems: incomplete
element assignments, guardian and shield cardinality, orphaned or
incomplete collection records, and per-card constraint violations.

Exits with status 3 when issues are found.

Example:
  binder verify
  binder verify --json`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	snap, err := backend.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot store: %w", err)
	}

	report, err := integrity.Validate(snap.Cards, snap.Collection)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if flagJSON {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if report.HasIssues() {
		backend.Detach()
		os.Exit(exitIntegrity)
	}
	return nil
}

// printReport prints the report in a human-readable form.
func printReport(report *integrity.Report) {
	if !report.HasIssues() {
		fmt.Println("No integrity issues found.")
		return
	}

	if len(report.InvalidElements) > 0 {
		fmt.Println("Element issues:")
		for _, issue := range report.InvalidElements {
			switch {
			case issue.Error != "":
				fmt.Printf("  %s (%s): %s\n", issue.Element, countLabel(issue.Count), issue.Error)
			case issue.MissingElements != nil:
				var missing []string
				if issue.MissingElements.Main {
					missing = append(missing, "main")
				}
				if issue.MissingElements.Strength {
					missing = append(missing, "strength")
				}
				if issue.MissingElements.Weakness {
					missing = append(missing, "weakness")
				}
				fmt.Printf("  card %d %s (%s): missing %s\n",
					issue.CardID, issue.Name, issue.Number, strings.Join(missing, ", "))
			}
		}
	}

	if len(report.CollectionIssues) > 0 {
		fmt.Println("Collection issues:")
		for _, issue := range report.CollectionIssues {
			fmt.Printf("  record %d (card %d): %s\n",
				issue.ID, issue.CardID, strings.Join(issue.Issues, "; "))
		}
	}

	if len(report.ConstraintViolations) > 0 {
		fmt.Println("Constraint violations:")
		for _, v := range report.ConstraintViolations {
			fmt.Printf("  card %d %s (%s): %s\n",
				v.CardID, v.Name, v.Number, strings.Join(v.Issues, "; "))
		}
	}

	fmt.Printf("%d issue(s) found.\n", report.TotalIssues())
}

func countLabel(count *int) string {
	if count == nil {
		return "?"
	}
	return fmt.Sprintf("guardian/shield count %d", *count)
}
