// JSON export and import of the full catalog and collection. Exports
// are written atomically; imports merge by card number under a caller
// chosen strategy.
package sqlite

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/deckmint/binder/pkg/types"
)

// Merge strategies for ImportCollection.
const (
	MergeSkip    = "skip"    // keep existing cards, add only new numbers
	MergeUpdate  = "update"  // overwrite existing cards, add new numbers
	MergeReplace = "replace" // drop everything and load the file
)

// ErrUnknownStrategy reports an unrecognized merge strategy.
var ErrUnknownStrategy = errors.New("unknown merge strategy")

// ExportEnvelope is the on-disk export document.
type ExportEnvelope struct {
	ExportID   string                   `json:"export_id"`
	ExportedAt time.Time                `json:"exported_at"`
	Cards      []types.Card             `json:"cards"`
	Collection []types.CollectionStatus `json:"collection"`
}

// ImportResult counts the outcome of an import, per record.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Updated  int `json:"updated"`
	Failed   int `json:"failed"`
}

// ExportCollection writes the full catalog and collection to path as
// JSON. The file is written to a temporary name and renamed into place
// so a crash never leaves a partial export.
func (b *Backend) ExportCollection(path string) error {
	snap, err := b.Snapshot()
	if err != nil {
		return err
	}

	envelope := ExportEnvelope{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Cards:      snap.Cards,
		Collection: snap.Collection,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	b.log.Info("exported collection", map[string]any{
		"path":       path,
		"cards":      len(envelope.Cards),
		"collection": len(envelope.Collection),
	})
	return nil
}

// ImportCollection loads an export file and merges it into the store.
// Cards are matched by number. Collection records follow their card:
// kept when the card was imported or updated, skipped when the card
// was skipped, counted failed when their card is absent from the file.
func (b *Backend) ImportCollection(path, strategy string) (*ImportResult, error) {
	switch strategy {
	case MergeSkip, MergeUpdate, MergeReplace:
	default:
		return nil, fmt.Errorf("strategy %q: %w", strategy, ErrUnknownStrategy)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var envelope ExportEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding import file: %w", err)
	}

	cardsTbl, err := b.GetTable(types.CardsTable)
	if err != nil {
		return nil, err
	}
	collectionTbl, err := b.GetTable(types.CollectionTable)
	if err != nil {
		return nil, err
	}

	if strategy == MergeReplace {
		if err := b.truncate(); err != nil {
			return nil, err
		}
	}

	existingByNumber, err := b.numbersToIDs()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}

	// fileIDToStoreID maps a card id as it appears in the file to the
	// id it holds in this store after the merge. Collection records
	// carry file-local card ids and need remapping.
	fileIDToStoreID := make(map[int64]int64, len(envelope.Cards))

	for i := range envelope.Cards {
		card := envelope.Cards[i] // copy; Set mutates identity and timestamps
		fileID := card.ID
		card.ID = 0

		existingID, exists := existingByNumber[card.Number]
		switch {
		case exists && strategy == MergeSkip:
			result.Skipped++
			fileIDToStoreID[fileID] = 0 // records for skipped cards are skipped
		case exists: // MergeUpdate
			if _, err := cardsTbl.Set(existingID, &card); err != nil {
				b.log.Warn("import: card update failed", map[string]any{
					"number": card.Number, "error": err.Error(),
				})
				result.Failed++
				continue
			}
			result.Updated++
			fileIDToStoreID[fileID] = existingID
		default:
			newID, err := cardsTbl.Set(0, &card)
			if err != nil {
				b.log.Warn("import: card insert failed", map[string]any{
					"number": card.Number, "error": err.Error(),
				})
				result.Failed++
				continue
			}
			result.Imported++
			fileIDToStoreID[fileID] = newID
		}
	}

	for i := range envelope.Collection {
		status := envelope.Collection[i]
		storeID, known := fileIDToStoreID[status.CardID]
		if !known {
			result.Failed++
			continue
		}
		if storeID == 0 {
			result.Skipped++
			continue
		}
		status.ID = 0
		status.CardID = storeID
		if _, err := collectionTbl.Set(0, &status); err != nil {
			b.log.Warn("import: collection record failed", map[string]any{
				"card_id": storeID, "error": err.Error(),
			})
			result.Failed++
			continue
		}
		result.Imported++
	}

	b.log.Info("imported collection", map[string]any{
		"path":     path,
		"strategy": strategy,
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"updated":  result.Updated,
		"failed":   result.Failed,
	})
	return result, nil
}

// numbersToIDs maps every catalog number to its card id.
func (b *Backend) numbersToIDs() (map[string]int64, error) {
	db, err := b.requireAttached()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query("SELECT id, number FROM cards")
	if err != nil {
		return nil, fmt.Errorf("listing card numbers: %w", err)
	}
	defer rows.Close()

	byNumber := map[string]int64{}
	for rows.Next() {
		var id int64
		var number string
		if err := rows.Scan(&id, &number); err != nil {
			return nil, fmt.Errorf("scanning card number: %w", err)
		}
		byNumber[number] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card numbers: %w", err)
	}
	return byNumber, nil
}

// truncate empties both tables. Used by the replace merge strategy.
func (b *Backend) truncate() error {
	db, err := b.requireAttached()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM collection_status"); err != nil {
		return fmt.Errorf("clearing collection: %w", err)
	}
	if _, err := db.Exec("DELETE FROM cards"); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}
	return nil
}

// atomicWriteFile writes data to a temporary file in the destination
// directory, syncs it, and renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
