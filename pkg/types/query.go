package types

// CardRow is one pairing from the left outer join of catalog to collection.
// Status is nil when the card has no collection records; a card with N
// records appears in N rows, one per record. Duplicate card identities
// across rows are expected and meaningful: each row is a distinct pairing.
type CardRow struct {
	Card   Card              `json:"card"`
	Status *CollectionStatus `json:"status,omitempty"`
}

// Snapshot is a point-in-time copy of the full catalog and collection,
// the input to integrity validation. The consumer may assume no writer
// interleaves with the two sequences; producing a consistent pair is the
// storage backend's responsibility.
type Snapshot struct {
	Cards      []Card
	Collection []CollectionStatus
}

// Querier resolves joined catalog/collection views beyond plain table CRUD.
type Querier interface {
	// FindCardsByName returns one CardRow per join pairing for every card
	// whose name matches. A card with no collection records still appears
	// exactly once, with a nil Status.
	FindCardsByName(name string) ([]CardRow, error)

	// Snapshot returns flat copies of all cards and all collection records.
	Snapshot() (Snapshot, error)
}
