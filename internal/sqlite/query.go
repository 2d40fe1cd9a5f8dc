// Joined catalog/collection queries and the snapshot extraction that
// feeds the integrity validator.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/deckmint/binder/pkg/types"
)

// FindCardsByName returns one CardRow per join pairing for every card
// whose name matches exactly. Left-outer-join semantics: a card with no
// collection records appears exactly once with a nil Status, and a card
// with N records appears N times, once per record. Rows are ordered by
// card id, then record id.
func (b *Backend) FindCardsByName(name string) ([]types.CardRow, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT `+prefixColumns("cards", cardColumns)+`,
			cs.id, cs.card_id, cs.acquisition_date, cs.acquisition_method, cs.condition,
			cs.is_holo, cs.is_promo, cs.is_misprint, cs.notes, cs.created_at, cs.updated_at
		FROM cards
		LEFT OUTER JOIN collection_status AS cs ON cs.card_id = cards.id
		WHERE cards.name = ?
		ORDER BY cards.id ASC, cs.id ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("finding cards by name: %w", err)
	}
	defer rows.Close()

	results := []types.CardRow{}
	for rows.Next() {
		row, err := hydrateCardRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating card row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return results, nil
}

// Snapshot returns flat copies of the full catalog and collection,
// each ordered by id. The returned value is independent of the store:
// callers may hold it across writes.
func (b *Backend) Snapshot() (types.Snapshot, error) {
	var snap types.Snapshot

	cardsTbl, err := b.GetTable(types.CardsTable)
	if err != nil {
		return snap, err
	}
	collectionTbl, err := b.GetTable(types.CollectionTable)
	if err != nil {
		return snap, err
	}

	cardRows, err := cardsTbl.Fetch(nil)
	if err != nil {
		return snap, fmt.Errorf("snapshotting catalog: %w", err)
	}
	statusRows, err := collectionTbl.Fetch(nil)
	if err != nil {
		return snap, fmt.Errorf("snapshotting collection: %w", err)
	}

	snap.Cards = make([]types.Card, 0, len(cardRows))
	for _, r := range cardRows {
		snap.Cards = append(snap.Cards, *r.(*types.Card))
	}
	snap.Collection = make([]types.CollectionStatus, 0, len(statusRows))
	for _, r := range statusRows {
		snap.Collection = append(snap.Collection, *r.(*types.CollectionStatus))
	}
	return snap, nil
}

// hydrateCardRow scans one joined row. The collection columns are all
// NULL when the card has no collection record; the record id being NULL
// is the discriminator.
func hydrateCardRow(scan func(dest ...any) error) (types.CardRow, error) {
	var row types.CardRow
	var c types.Card
	var powerLevel sql.NullInt64
	var createdAt, updatedAt string

	var sID, sCardID sql.NullInt64
	var sAcquired, sMethod, sCondition, sNotes, sCreatedAt, sUpdatedAt sql.NullString
	var sHolo, sPromo, sMisprint sql.NullBool

	err := scan(
		&c.ID, &c.Number, &c.Name, &c.CardType, &c.Element, &c.Strength, &c.Weakness,
		&powerLevel, &c.Level, &c.IsHolo, &c.IsMascot, &c.IsBoxTopper,
		&c.Talent, &c.Edition, &c.Illustrator, &createdAt, &updatedAt,
		&sID, &sCardID, &sAcquired, &sMethod, &sCondition,
		&sHolo, &sPromo, &sMisprint, &sNotes, &sCreatedAt, &sUpdatedAt,
	)
	if err != nil {
		return row, err
	}

	if powerLevel.Valid {
		v := powerLevel.Int64
		c.PowerLevel = &v
	}
	if c.CreatedAt, err = parseRFC3339(createdAt); err != nil {
		return row, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt); err != nil {
		return row, err
	}
	row.Card = c

	if !sID.Valid {
		return row, nil // no collection pairing
	}

	s := types.CollectionStatus{
		ID:                sID.Int64,
		CardID:            sCardID.Int64,
		AcquisitionMethod: sMethod.String,
		Condition:         sCondition.String,
		IsHolo:            sHolo.Bool,
		IsPromo:           sPromo.Bool,
		IsMisprint:        sMisprint.Bool,
		Notes:             sNotes.String,
	}
	if sAcquired.Valid && sAcquired.String != "" {
		t, err := parseRFC3339(sAcquired.String)
		if err != nil {
			return row, err
		}
		s.AcquisitionDate = &t
	}
	if s.CreatedAt, err = parseRFC3339(sCreatedAt.String); err != nil {
		return row, err
	}
	if s.UpdatedAt, err = parseRFC3339(sUpdatedAt.String); err != nil {
		return row, err
	}
	row.Status = &s
	return row, nil
}
