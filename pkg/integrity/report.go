package integrity

// Violation and issue strings rendered into reports. These are a stable
// output contract; formatters and downstream tooling match on them.
const (
	// CardinalityError marks an element whose guardian/shield pair count
	// deviates from exactly one of each.
	CardinalityError = "Each element should have exactly one guardian and one shield card"

	// IssueMissingAcquisitionDate and IssueMissingAcquisitionMethod mark
	// incomplete collection records. When both apply they are listed in
	// this order.
	IssueMissingAcquisitionDate   = "Missing acquisition date"
	IssueMissingAcquisitionMethod = "Missing acquisition method"

	// IssueOrphanedRecord marks a collection record whose card reference
	// matches nothing in the catalog.
	IssueOrphanedRecord = "Orphaned collection record"

	// IssueLevelTenNotHolo marks a level-10 card stored as non-holo.
	IssueLevelTenNotHolo = "Level 10 card must be holo"

	// IssueBoxTopperPowerLevel marks a box topper carrying a gameplay
	// power level.
	IssueBoxTopperPowerLevel = "Box topper should not have power level"
)

// MissingElements flags which required element fields are absent on a card.
// A field is flagged only when the card's type requires it.
type MissingElements struct {
	Main     bool `json:"main"`
	Strength bool `json:"strength"`
	Weakness bool `json:"weakness"`
}

// ElementIssue is one entry in the invalid_elements section. Entries come
// in two shapes: per-card entries set CardID, Number, Name, and
// MissingElements; cardinality entries set Element, Count, and Error.
// Count is a pointer so a zero count still serializes.
type ElementIssue struct {
	CardID          int64            `json:"id,omitempty"`
	Number          string           `json:"number,omitempty"`
	Name            string           `json:"name,omitempty"`
	MissingElements *MissingElements `json:"missing_elements,omitempty"`
	Element         string           `json:"element,omitempty"`
	Count           *int             `json:"count,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// CollectionIssue lists the problems found on one collection record.
type CollectionIssue struct {
	ID     int64    `json:"id"`
	CardID int64    `json:"card_id"`
	Issues []string `json:"issues"`
}

// ConstraintViolation lists the game-rule violations found on one card.
type ConstraintViolation struct {
	CardID int64    `json:"id"`
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Issues []string `json:"issues"`
}

// Report is the output of one validation pass. It is rebuilt from scratch
// on every run, never persisted, and never partially updated. All three
// sections are non-nil so an empty report serializes with empty arrays.
type Report struct {
	InvalidElements      []ElementIssue        `json:"invalid_elements"`
	CollectionIssues     []CollectionIssue     `json:"collection_issues"`
	ConstraintViolations []ConstraintViolation `json:"constraint_violations"`
}

// HasIssues reports whether any section contains at least one entry.
func (r *Report) HasIssues() bool {
	return len(r.InvalidElements) > 0 ||
		len(r.CollectionIssues) > 0 ||
		len(r.ConstraintViolations) > 0
}

// TotalIssues returns the number of entries across all sections.
func (r *Report) TotalIssues() int {
	return len(r.InvalidElements) + len(r.CollectionIssues) + len(r.ConstraintViolations)
}
