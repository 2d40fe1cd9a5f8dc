package sqlite

import "database/sql"

// Schema DDL. The schema is applied idempotently on every Attach; an
// existing database file is reused, never recreated.
const (
	createCards = `CREATE TABLE IF NOT EXISTS cards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    number TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    card_type TEXT NOT NULL,
    element TEXT NOT NULL DEFAULT '',
    strength TEXT NOT NULL DEFAULT '',
    weakness TEXT NOT NULL DEFAULT '',
    power_level INTEGER,
    level INTEGER NOT NULL DEFAULT 0,
    is_holo INTEGER NOT NULL DEFAULT 0,
    is_mascot INTEGER NOT NULL DEFAULT 0,
    is_box_topper INTEGER NOT NULL DEFAULT 0,
    talent TEXT NOT NULL DEFAULT '',
    edition TEXT NOT NULL DEFAULT '',
    illustrator TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	// card_id carries no foreign-key constraint: a dangling reference is
	// data the integrity validator must be able to observe and report.
	createCollectionStatus = `CREATE TABLE IF NOT EXISTS collection_status (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    card_id INTEGER NOT NULL,
    acquisition_date TEXT,
    acquisition_method TEXT NOT NULL DEFAULT '',
    condition TEXT NOT NULL DEFAULT '',
    is_holo INTEGER NOT NULL DEFAULT 0,
    is_promo INTEGER NOT NULL DEFAULT 0,
    is_misprint INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxCardsName          = `CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);`
	idxCardsType          = `CREATE INDEX IF NOT EXISTS idx_cards_type ON cards(card_type);`
	idxCardsElement       = `CREATE INDEX IF NOT EXISTS idx_cards_element ON cards(element);`
	idxCollectionCard     = `CREATE INDEX IF NOT EXISTS idx_collection_card ON collection_status(card_id);`
	idxCollectionAcquired = `CREATE INDEX IF NOT EXISTS idx_collection_acquired ON collection_status(acquisition_date);`
)

// schemaDDL lists all statements in application order.
var schemaDDL = []string{
	createCards,
	createCollectionStatus,
	idxCardsName,
	idxCardsType,
	idxCardsElement,
	idxCollectionCard,
	idxCollectionAcquired,
}

// applySchema executes every schema statement against the database.
func applySchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
