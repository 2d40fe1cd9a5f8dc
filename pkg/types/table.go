package types

import "errors"

// Filter holds Fetch selection criteria keyed by field name.
type Filter map[string]any

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct. Identities are backend-assigned integers.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id int64) (any, error)

	// Set creates or updates an entity. When id is zero a new identity is
	// assigned. Returns the actual ID used (assigned or provided).
	Set(id int64, data any) (int64, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id int64) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table.
	Fetch(filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity validation errors.
var (
	ErrInvalidCardType    = errors.New("invalid card type")
	ErrInvalidElement     = errors.New("invalid element")
	ErrInvalidAcquisition = errors.New("invalid acquisition method")
	ErrInvalidCondition   = errors.New("invalid condition")
	ErrInvalidNumber      = errors.New("invalid card number")
	ErrDuplicateNumber    = errors.New("card number already exists")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidFilter      = errors.New("invalid filter value type")
)
