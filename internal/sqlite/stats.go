// Collection analysis queries: completion statistics, missing cards,
// recent acquisitions, complete variant sets, duplicate scans, and card
// number format validation.
package sqlite

import (
	"database/sql"
	"fmt"
	"regexp"

	"github.com/deckmint/binder/pkg/types"
)

// CollectionStats summarizes collection completeness.
type CollectionStats struct {
	TotalCards           int            `json:"total_cards"`
	TotalCollected       int            `json:"total_collected"`
	CompletionPercentage float64        `json:"completion_percentage"`
	CollectedByType      map[string]int `json:"collected_by_type"`
	TotalHolos           int            `json:"total_holos"`
}

// NameGroup lists the cards sharing one name.
type NameGroup struct {
	Name  string       `json:"name"`
	Count int          `json:"count"`
	Cards []types.Card `json:"cards"`
}

// ElementMismatch lists a character whose variants disagree on element.
type ElementMismatch struct {
	Name     string       `json:"name"`
	Elements []string     `json:"elements"`
	Cards    []types.Card `json:"cards"`
}

// DuplicateReport holds the result of a duplicate scan.
type DuplicateReport struct {
	DuplicateNames     []NameGroup       `json:"duplicate_names"`
	MismatchedElements []ElementMismatch `json:"mismatched_elements"`
}

// maxVariantsPerCharacter is the expected ceiling of variants per
// character name: regular and holo at three power levels, the mascot
// pair, and the box topper.
const maxVariantsPerCharacter = 8

// Stats computes collection statistics. A card counts as collected when
// it has at least one collection record.
func (b *Backend) Stats() (*CollectionStats, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}

	stats := &CollectionStats{CollectedByType: make(map[string]int)}

	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&stats.TotalCards); err != nil {
		return nil, fmt.Errorf("counting cards: %w", err)
	}
	if err := db.QueryRow(
		"SELECT COUNT(DISTINCT card_id) FROM collection_status WHERE card_id IN (SELECT id FROM cards)",
	).Scan(&stats.TotalCollected); err != nil {
		return nil, fmt.Errorf("counting collected cards: %w", err)
	}
	if stats.TotalCards > 0 {
		stats.CompletionPercentage = float64(stats.TotalCollected) / float64(stats.TotalCards) * 100
	}

	rows, err := db.Query(`
		SELECT cards.card_type, COUNT(DISTINCT cards.id)
		FROM cards
		INNER JOIN collection_status AS cs ON cs.card_id = cards.id
		GROUP BY cards.card_type`)
	if err != nil {
		return nil, fmt.Errorf("counting by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cardType string
		var count int
		if err := rows.Scan(&cardType, &count); err != nil {
			return nil, fmt.Errorf("scanning type count: %w", err)
		}
		stats.CollectedByType[cardType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating type counts: %w", err)
	}

	if err := db.QueryRow(
		"SELECT COUNT(*) FROM collection_status WHERE is_holo = 1",
	).Scan(&stats.TotalHolos); err != nil {
		return nil, fmt.Errorf("counting holos: %w", err)
	}

	return stats, nil
}

// MissingCards returns the catalog cards with no collection record,
// ordered by id.
func (b *Backend) MissingCards() ([]types.Card, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT ` + cardColumns + ` FROM cards
		WHERE id NOT IN (SELECT card_id FROM collection_status)
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying missing cards: %w", err)
	}
	defer rows.Close()

	missing := []types.Card{}
	for rows.Next() {
		card, err := hydrateCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating missing card: %w", err)
		}
		missing = append(missing, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating missing cards: %w", err)
	}
	return missing, nil
}

// RecentAcquisitions returns up to limit join pairings with a recorded
// acquisition date, newest first.
func (b *Backend) RecentAcquisitions(limit int) ([]types.CardRow, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query(`
		SELECT `+prefixColumns("cards", cardColumns)+`,
			cs.id, cs.card_id, cs.acquisition_date, cs.acquisition_method, cs.condition,
			cs.is_holo, cs.is_promo, cs.is_misprint, cs.notes, cs.created_at, cs.updated_at
		FROM cards
		INNER JOIN collection_status AS cs ON cs.card_id = cards.id
		WHERE cs.acquisition_date IS NOT NULL
		ORDER BY cs.acquisition_date DESC, cs.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent acquisitions: %w", err)
	}
	defer rows.Close()

	results := []types.CardRow{}
	for rows.Next() {
		row, err := hydrateCardRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating acquisition row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating acquisitions: %w", err)
	}
	return results, nil
}

// CompleteSets returns the character names whose every catalog variant
// has at least one collection record, ordered by name.
func (b *Backend) CompleteSets() ([]string, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT name FROM cards
		WHERE card_type = ?
		GROUP BY name
		HAVING COUNT(*) = SUM(CASE WHEN id IN (SELECT card_id FROM collection_status) THEN 1 ELSE 0 END)
		ORDER BY name ASC`, types.CardTypeCharacter)
	if err != nil {
		return nil, fmt.Errorf("querying complete sets: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning set name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating set names: %w", err)
	}
	return names, nil
}

// DuplicateEntries scans for suspicious catalog groupings: character
// names with more variants than a complete set allows, and characters
// whose variants disagree on element. Card numbers cannot duplicate
// (the schema enforces uniqueness) so they are not scanned.
func (b *Backend) DuplicateEntries() (*DuplicateReport, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}

	report := &DuplicateReport{
		DuplicateNames:     []NameGroup{},
		MismatchedElements: []ElementMismatch{},
	}

	rows, err := db.Query(`
		SELECT name, COUNT(*) FROM cards
		WHERE card_type = ?
		GROUP BY name
		HAVING COUNT(*) > ?
		ORDER BY name ASC`, types.CardTypeCharacter, maxVariantsPerCharacter)
	if err != nil {
		return nil, fmt.Errorf("querying oversized name groups: %w", err)
	}
	type group struct {
		name  string
		count int
	}
	var oversized []group
	for rows.Next() {
		var g group
		if err := rows.Scan(&g.name, &g.count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning name group: %w", err)
		}
		oversized = append(oversized, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating name groups: %w", err)
	}

	for _, g := range oversized {
		cards, err := b.cardsByName(db, g.name)
		if err != nil {
			return nil, err
		}
		report.DuplicateNames = append(report.DuplicateNames, NameGroup{
			Name:  g.name,
			Count: g.count,
			Cards: cards,
		})
	}

	// Element mismatches: a character's variants must agree on element.
	mismatchRows, err := db.Query(`
		SELECT name FROM cards
		WHERE card_type = ? AND element != ''
		GROUP BY name
		HAVING COUNT(DISTINCT element) > 1
		ORDER BY name ASC`, types.CardTypeCharacter)
	if err != nil {
		return nil, fmt.Errorf("querying element mismatches: %w", err)
	}
	var mismatched []string
	for mismatchRows.Next() {
		var name string
		if err := mismatchRows.Scan(&name); err != nil {
			mismatchRows.Close()
			return nil, fmt.Errorf("scanning mismatch name: %w", err)
		}
		mismatched = append(mismatched, name)
	}
	mismatchRows.Close()
	if err := mismatchRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mismatch names: %w", err)
	}

	for _, name := range mismatched {
		cards, err := b.cardsByName(db, name)
		if err != nil {
			return nil, err
		}
		seen := map[string]bool{}
		elements := []string{}
		for _, c := range cards {
			if c.Element != "" && !seen[c.Element] {
				seen[c.Element] = true
				elements = append(elements, c.Element)
			}
		}
		report.MismatchedElements = append(report.MismatchedElements, ElementMismatch{
			Name:     name,
			Elements: elements,
			Cards:    cards,
		})
	}

	return report, nil
}

// cardsByName loads all cards with the given name, ordered by id.
func (b *Backend) cardsByName(db *sql.DB, name string) ([]types.Card, error) {
	rows, err := db.Query("SELECT "+cardColumns+" FROM cards WHERE name = ? ORDER BY id ASC", name)
	if err != nil {
		return nil, fmt.Errorf("querying cards named %q: %w", name, err)
	}
	defer rows.Close()

	cards := []types.Card{}
	for rows.Next() {
		card, err := hydrateCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating card named %q: %w", name, err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards named %q: %w", name, err)
	}
	return cards, nil
}

// numberPatterns are the accepted card number formats per card type
// prefix, plus bare numerics for early editions printed without one.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^CH-\d{3}[A-Z]$`),
	regexp.MustCompile(`^SP-\d{3}[A-Z]$`),
	regexp.MustCompile(`^GD-\d{3}$`),
	regexp.MustCompile(`^SH-\d{3}$`),
	regexp.MustCompile(`^PR-\d{4}$`),
	regexp.MustCompile(`^BT-\d{3}$`),
	regexp.MustCompile(`^\d{1,4}$`),
}

// ValidateCardNumber checks a card number's format and uniqueness.
// Returns (false, reason) when the number cannot be used for a new card.
func (b *Backend) ValidateCardNumber(number string) (bool, string) {
	if number == "" {
		return false, "Card number cannot be empty"
	}

	valid := false
	for _, p := range numberPatterns {
		if p.MatchString(number) {
			valid = true
			break
		}
	}
	if !valid {
		return false, "Invalid card number format"
	}

	db, err := b.requireAttached()
	if err != nil {
		return false, err.Error()
	}
	var existing int64
	err = db.QueryRow("SELECT id FROM cards WHERE number = ?", number).Scan(&existing)
	if err == nil {
		return false, "Card number already exists"
	}
	if err != sql.ErrNoRows {
		return false, fmt.Sprintf("checking card number: %v", err)
	}

	return true, ""
}
