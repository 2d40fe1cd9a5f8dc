// Catalog table accessor. Hydrates between SQLite rows and types.Card
// values and enforces field validity on write; cross-record consistency
// is the integrity validator's job, not the store's.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/deckmint/binder/pkg/types"
)

// Compile-time interface check: cardsTable must implement Table.
var _ types.Table = (*cardsTable)(nil)

// cardsTable implements the Table interface for the card catalog.
type cardsTable struct {
	backend *Backend
}

// cardColumns is the SELECT column list shared by every card query.
const cardColumns = `id, number, name, card_type, element, strength, weakness,
	power_level, level, is_holo, is_mascot, is_box_topper,
	talent, edition, illustrator, created_at, updated_at`

// Get retrieves a card by ID.
func (ct *cardsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+cardColumns+" FROM cards WHERE id = ?", id)
	card, err := hydrateCard(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting card %d: %w", id, err)
	}
	return card, nil
}

// Set persists a card. If id is zero, a new catalog identity is assigned
// and returned. If id is provided, the existing card is updated.
func (ct *cardsTable) Set(id int64, data any) (int64, error) {
	card, ok := data.(*types.Card)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := validateCard(card); err != nil {
		return 0, err
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return 0, err
	}

	// The number is unique per catalog. Checked up front so callers get
	// the sentinel instead of a raw constraint error.
	var clash int64
	err = db.QueryRow("SELECT id FROM cards WHERE number = ? AND id != ?", card.Number, id).Scan(&clash)
	if err == nil {
		return 0, fmt.Errorf("number %q is held by card %d: %w", card.Number, clash, types.ErrDuplicateNumber)
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("checking number uniqueness: %w", err)
	}

	now := time.Now().UTC()
	card.UpdatedAt = now

	if id == 0 {
		card.CreatedAt = now
		res, err := db.Exec(
			`INSERT INTO cards (number, name, card_type, element, strength, weakness,
				power_level, level, is_holo, is_mascot, is_box_topper,
				talent, edition, illustrator, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			card.Number, card.Name, card.CardType, card.Element, card.Strength, card.Weakness,
			nullablePowerLevel(card.PowerLevel), card.Level, card.IsHolo, card.IsMascot, card.IsBoxTopper,
			card.Talent, card.Edition, card.Illustrator,
			now.Format(time.RFC3339), now.Format(time.RFC3339),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting card: %w", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading card identity: %w", err)
		}
		card.ID = newID
		return newID, nil
	}

	res, err := db.Exec(
		`UPDATE cards SET number = ?, name = ?, card_type = ?, element = ?, strength = ?, weakness = ?,
			power_level = ?, level = ?, is_holo = ?, is_mascot = ?, is_box_topper = ?,
			talent = ?, edition = ?, illustrator = ?, updated_at = ?
		WHERE id = ?`,
		card.Number, card.Name, card.CardType, card.Element, card.Strength, card.Weakness,
		nullablePowerLevel(card.PowerLevel), card.Level, card.IsHolo, card.IsMascot, card.IsBoxTopper,
		card.Talent, card.Edition, card.Illustrator,
		now.Format(time.RFC3339), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating card %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("updating card %d: %w", id, err)
	}
	if n == 0 {
		return 0, types.ErrNotFound
	}
	card.ID = id
	return id, nil
}

// Delete removes a card from the catalog. Collection records referencing
// it are deliberately left in place; orphan detection belongs to the
// integrity validator, not the store.
func (ct *cardsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting card %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting card %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries cards matching the filter, ordered by id ascending.
// Recognized filter keys: name, card_type, element, power_level,
// limit, offset.
func (ct *cardsTable) Fetch(filter types.Filter) ([]any, error) {
	db, err := ct.backend.requireAttached()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + cardColumns + " FROM cards"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["name"]; ok {
			name, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "name = ?")
			args = append(args, name)
		}
		if v, ok := filter["card_type"]; ok {
			ctype, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "card_type = ?")
			args = append(args, ctype)
		}
		if v, ok := filter["element"]; ok {
			element, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "element = ?")
			args = append(args, element)
		}
		if v, ok := filter["power_level"]; ok {
			pl, ok := toInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "power_level = ?")
			args = append(args, pl)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	if filter != nil {
		if v, ok := filter["limit"]; ok {
			limit, ok := toInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			if limit > 0 {
				query += fmt.Sprintf(" LIMIT %d", limit)
			}
		}
		if v, ok := filter["offset"]; ok {
			offset, ok := toInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			if offset > 0 {
				query += fmt.Sprintf(" OFFSET %d", offset)
			}
		}
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching cards: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		card, err := hydrateCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating card: %w", err)
		}
		results = append(results, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}
	return results, nil
}

// validateCard checks field validity before persistence.
func validateCard(card *types.Card) error {
	if card.Name == "" {
		return types.ErrInvalidName
	}
	if card.Number == "" {
		return types.ErrInvalidNumber
	}
	if !types.IsValidCardType(card.CardType) {
		return types.ErrInvalidCardType
	}
	// Element fields may be absent; when present they must be recognized.
	for _, e := range []string{card.Element, card.Strength, card.Weakness} {
		if e != "" && !types.IsValidElement(e) {
			return types.ErrInvalidElement
		}
	}
	return nil
}

// hydrateCard converts one row into a *types.Card. The scan argument
// works for both sql.Row and sql.Rows.
func hydrateCard(scan func(dest ...any) error) (*types.Card, error) {
	var c types.Card
	var powerLevel sql.NullInt64
	var createdAt, updatedAt string
	err := scan(
		&c.ID, &c.Number, &c.Name, &c.CardType, &c.Element, &c.Strength, &c.Weakness,
		&powerLevel, &c.Level, &c.IsHolo, &c.IsMascot, &c.IsBoxTopper,
		&c.Talent, &c.Edition, &c.Illustrator, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if powerLevel.Valid {
		v := powerLevel.Int64
		c.PowerLevel = &v
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

// nullablePowerLevel converts a *int64 to its SQL representation.
func nullablePowerLevel(pl *int64) any {
	if pl == nil {
		return nil
	}
	return *pl
}

// toInt64 accepts the integer types callers realistically pass in filters.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
