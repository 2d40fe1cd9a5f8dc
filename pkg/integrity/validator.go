// Package integrity implements the data-integrity validation engine: a
// fixed battery of cross-record rule checks over catalog and collection
// snapshots, producing a categorized issue report.
//
// Validate is a pure function of its two inputs. It performs no I/O,
// keeps no state between calls, and never mutates the snapshots it is
// given. Malformed-but-representable data (missing elements, unset power
// levels, dangling references) is reported, never returned as an error;
// hard errors are reserved for structurally invalid input that indicates
// a broken storage collaborator.
package integrity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/deckmint/binder/pkg/types"
)

// Structural input errors. These indicate a failure in the storage
// collaborator, not a data-quality issue, and are never report entries.
var (
	ErrCardIdentity   = errors.New("card record is missing its identity")
	ErrStatusIdentity = errors.New("collection record is missing its identity")
)

// powerLevelUnset is the absence marker rendered into power-level
// violation messages when no value is set.
const powerLevelUnset = "None"

// Validate runs every rule check over the catalog and collection
// snapshots and returns the aggregated report. The checks are
// independent: a card failing one rule still participates in all others,
// and a single card may appear in more than one section.
//
// Input order is irrelevant to the issue sets. Report ordering is stable
// and reproducible: per-card and per-record entries are sorted by
// identity, and element-cardinality entries follow in canonical element
// order. Two calls on unchanged inputs yield byte-identical reports.
func Validate(catalog []types.Card, collection []types.CollectionStatus) (*Report, error) {
	for _, c := range catalog {
		if c.ID == 0 {
			return nil, fmt.Errorf("card %q: %w", c.Number, ErrCardIdentity)
		}
	}
	for _, s := range collection {
		if s.ID == 0 {
			return nil, fmt.Errorf("record for card %d: %w", s.CardID, ErrStatusIdentity)
		}
	}

	// Sort copies of the slice headers; the inputs stay untouched.
	cards := make([]types.Card, len(catalog))
	copy(cards, catalog)
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })

	records := make([]types.CollectionStatus, len(collection))
	copy(records, collection)
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	known := make(map[int64]bool, len(cards))
	for _, c := range cards {
		known[c.ID] = true
	}

	report := &Report{
		InvalidElements:      checkElements(cards),
		CollectionIssues:     checkCollection(records, known),
		ConstraintViolations: checkConstraints(cards),
	}
	return report, nil
}

// checkElements runs element completeness over every element-requiring
// card, then guardian/shield cardinality over the full element universe.
// Per-card entries come first (sorted by identity, as the caller sorted
// the slice), cardinality entries after, in canonical element order.
func checkElements(cards []types.Card) []ElementIssue {
	issues := []ElementIssue{}

	for _, c := range cards {
		if !c.RequiresElement() {
			continue
		}
		missing := MissingElements{
			Main:     c.Element == "",
			Strength: c.RequiresMatchups() && c.Strength == "",
			Weakness: c.RequiresMatchups() && c.Weakness == "",
		}
		if missing.Main || missing.Strength || missing.Weakness {
			m := missing
			issues = append(issues, ElementIssue{
				CardID:          c.ID,
				Number:          c.Number,
				Name:            c.Name,
				MissingElements: &m,
			})
		}
	}

	// Pair counts per element. Cards with an absent element are skipped
	// here; their absence is already flagged above.
	guardians := make(map[string]int)
	shields := make(map[string]int)
	for _, c := range cards {
		if c.Element == "" {
			continue
		}
		switch c.CardType {
		case types.CardTypeGuardian:
			guardians[c.Element]++
		case types.CardTypeShield:
			shields[c.Element]++
		}
	}

	for _, e := range types.Elements {
		g, s := guardians[e], shields[e]
		if g == 1 && s == 1 {
			continue
		}
		count := g + s
		issues = append(issues, ElementIssue{
			Element: e,
			Count:   &count,
			Error:   CardinalityError,
		})
	}

	return issues
}

// checkCollection verifies every collection record: the card reference
// must resolve, and both acquisition fields must be present. Issue order
// within a record is fixed: orphan, date, method.
func checkCollection(records []types.CollectionStatus, known map[int64]bool) []CollectionIssue {
	issues := []CollectionIssue{}

	for _, r := range records {
		var found []string
		if !known[r.CardID] {
			found = append(found, IssueOrphanedRecord)
		}
		if r.AcquisitionDate == nil {
			found = append(found, IssueMissingAcquisitionDate)
		}
		if r.AcquisitionMethod == "" {
			found = append(found, IssueMissingAcquisitionMethod)
		}
		if len(found) > 0 {
			issues = append(issues, CollectionIssue{
				ID:     r.ID,
				CardID: r.CardID,
				Issues: found,
			})
		}
	}

	return issues
}

// checkConstraints verifies game-rule constraints per card. Issue order
// within a card is fixed: power level, level-10 holo, box topper.
func checkConstraints(cards []types.Card) []ConstraintViolation {
	violations := []ConstraintViolation{}

	for _, c := range cards {
		var found []string

		if c.CardType == types.CardTypeCharacter && !powerLevelValid(c.PowerLevel) {
			found = append(found, "Invalid power level: "+powerLevelString(c.PowerLevel))
		}
		if c.Level == types.HoloLevel && !c.IsHolo {
			found = append(found, IssueLevelTenNotHolo)
		}
		if c.IsBoxTopper && c.PowerLevel != nil {
			found = append(found, IssueBoxTopperPowerLevel)
		}

		if len(found) > 0 {
			violations = append(violations, ConstraintViolation{
				CardID: c.ID,
				Number: c.Number,
				Name:   c.Name,
				Issues: found,
			})
		}
	}

	return violations
}

// powerLevelValid reports whether a power level is set and in range.
func powerLevelValid(pl *int64) bool {
	return pl != nil && *pl >= types.MinPowerLevel && *pl <= types.MaxPowerLevel
}

// powerLevelString renders a power level for violation messages,
// substituting the absence marker when unset.
func powerLevelString(pl *int64) string {
	if pl == nil {
		return powerLevelUnset
	}
	return strconv.FormatInt(*pl, 10)
}
