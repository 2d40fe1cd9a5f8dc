// Collection table accessor. One row per owned physical copy. The card
// reference is not verified on write: a record may legitimately outlive
// its card after a catalog deletion, and the integrity validator is the
// component that reports the orphan.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/deckmint/binder/pkg/types"
)

// Compile-time interface check: collectionTable must implement Table.
var _ types.Table = (*collectionTable)(nil)

// collectionTable implements the Table interface for collection records.
type collectionTable struct {
	backend *Backend
}

// collectionColumns is the SELECT column list shared by every query.
const collectionColumns = `id, card_id, acquisition_date, acquisition_method, condition,
	is_holo, is_promo, is_misprint, notes, created_at, updated_at`

// Get retrieves a collection record by ID.
func (ct *collectionTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+collectionColumns+" FROM collection_status WHERE id = ?", id)
	status, err := hydrateStatus(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting collection record %d: %w", id, err)
	}
	return status, nil
}

// Set persists a collection record. If id is zero, a new identity is
// assigned and returned; otherwise the existing record is updated.
func (ct *collectionTable) Set(id int64, data any) (int64, error) {
	status, ok := data.(*types.CollectionStatus)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := validateStatus(status); err != nil {
		return 0, err
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	status.UpdatedAt = now

	if id == 0 {
		status.CreatedAt = now
		res, err := db.Exec(
			`INSERT INTO collection_status (card_id, acquisition_date, acquisition_method, condition,
				is_holo, is_promo, is_misprint, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			status.CardID, nullableTime(status.AcquisitionDate), status.AcquisitionMethod, status.Condition,
			status.IsHolo, status.IsPromo, status.IsMisprint, status.Notes,
			now.Format(time.RFC3339), now.Format(time.RFC3339),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting collection record: %w", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading collection identity: %w", err)
		}
		status.ID = newID
		return newID, nil
	}

	res, err := db.Exec(
		`UPDATE collection_status SET card_id = ?, acquisition_date = ?, acquisition_method = ?,
			condition = ?, is_holo = ?, is_promo = ?, is_misprint = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		status.CardID, nullableTime(status.AcquisitionDate), status.AcquisitionMethod,
		status.Condition, status.IsHolo, status.IsPromo, status.IsMisprint, status.Notes,
		now.Format(time.RFC3339), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating collection record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("updating collection record %d: %w", id, err)
	}
	if n == 0 {
		return 0, types.ErrNotFound
	}
	status.ID = id
	return id, nil
}

// Delete removes a collection record.
func (ct *collectionTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := ct.backend.requireAttached()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM collection_status WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting collection record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting collection record %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries collection records matching the filter, ordered by id
// ascending. Recognized filter keys: card_id, acquisition_method,
// condition, limit, offset.
func (ct *collectionTable) Fetch(filter types.Filter) ([]any, error) {
	db, err := ct.backend.requireAttached()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + collectionColumns + " FROM collection_status"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["card_id"]; ok {
			cardID, ok := toInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "card_id = ?")
			args = append(args, cardID)
		}
		if v, ok := filter["acquisition_method"]; ok {
			method, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "acquisition_method = ?")
			args = append(args, method)
		}
		if v, ok := filter["condition"]; ok {
			cond, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "condition = ?")
			args = append(args, cond)
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
		return nil, fmt.Errorf("fetching collection records: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		status, err := hydrateStatus(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating collection record: %w", err)
		}
		results = append(results, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collection records: %w", err)
	}
	return results, nil
}

// validateStatus checks field validity before persistence. The
// acquisition fields may be absent (the validator reports them); when
// present they must be recognized values.
func validateStatus(status *types.CollectionStatus) error {
	if status.CardID <= 0 {
		return types.ErrInvalidData
	}
	if status.AcquisitionMethod != "" && !types.IsValidAcquisition(status.AcquisitionMethod) {
		return types.ErrInvalidAcquisition
	}
	if status.Condition != "" && !types.IsValidCondition(status.Condition) {
		return types.ErrInvalidCondition
	}
	return nil
}

// hydrateStatus converts one row into a *types.CollectionStatus.
func hydrateStatus(scan func(dest ...any) error) (*types.CollectionStatus, error) {
	var s types.CollectionStatus
	var acquired sql.NullString
	var createdAt, updatedAt string
	err := scan(
		&s.ID, &s.CardID, &acquired, &s.AcquisitionMethod, &s.Condition,
		&s.IsHolo, &s.IsPromo, &s.IsMisprint, &s.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if acquired.Valid && acquired.String != "" {
		t, err := time.Parse(time.RFC3339, acquired.String)
		if err != nil {
			return nil, fmt.Errorf("parsing acquisition_date: %w", err)
		}
		s.AcquisitionDate = &t
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

// nullableTime converts a *time.Time to its SQL representation.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
