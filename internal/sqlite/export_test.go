// Tests for JSON export/import and database backup.
package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmint/binder/pkg/types"
)

func TestExportCollection(t *testing.T) {
	b := setupBackend(t)

	cardID := seedCard(t, b, characterCard(1, "Fream"))
	seedStatus(t, b, ownedStatus(cardID))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, b.ExportCollection(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope ExportEnvelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.NotEmpty(t, envelope.ExportID)
	assert.False(t, envelope.ExportedAt.IsZero())
	require.Len(t, envelope.Cards, 1)
	assert.Equal(t, "Fream", envelope.Cards[0].Name)
	require.Len(t, envelope.Collection, 1)
	assert.Equal(t, cardID, envelope.Collection[0].CardID)

	// No temp file left behind next to the export.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestImportCollection(t *testing.T) {
	// exportFixture builds a store with two cards and one record, and
	// returns the export file path.
	exportFixture := func(t *testing.T) string {
		t.Helper()
		src := setupBackend(t)
		freamID := seedCard(t, src, characterCard(1, "Fream"))
		seedCard(t, src, characterCard(2, "Briny"))
		seedStatus(t, src, ownedStatus(freamID))
		path := filepath.Join(t.TempDir(), "export.json")
		require.NoError(t, src.ExportCollection(path))
		return path
	}

	t.Run("import into empty store brings everything", func(t *testing.T) {
		path := exportFixture(t)
		dst := setupBackend(t)

		result, err := dst.ImportCollection(path, MergeSkip)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported) // two cards, one record
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Failed)

		snap, err := dst.Snapshot()
		require.NoError(t, err)
		assert.Len(t, snap.Cards, 2)
		assert.Len(t, snap.Collection, 1)
	})

	t.Run("skip keeps existing cards and their records", func(t *testing.T) {
		path := exportFixture(t)
		dst := setupBackend(t)

		local := characterCard(1, "Local Fream") // same number CH-001A
		seedCard(t, dst, local)

		result, err := dst.ImportCollection(path, MergeSkip)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported) // only Briny
		assert.Equal(t, 2, result.Skipped)  // Fream card and its record
		assert.Equal(t, 0, result.Updated)

		rows, err := dst.FindCardsByName("Local Fream")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("update overwrites existing cards by number", func(t *testing.T) {
		path := exportFixture(t)
		dst := setupBackend(t)

		seedCard(t, dst, characterCard(1, "Local Fream"))

		result, err := dst.ImportCollection(path, MergeUpdate)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported) // Briny card, Fream record
		assert.Equal(t, 1, result.Updated)  // Fream card

		rows, err := dst.FindCardsByName("Fream")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Status)
	})

	t.Run("replace drops everything first", func(t *testing.T) {
		path := exportFixture(t)
		dst := setupBackend(t)

		unrelatedID := seedCard(t, dst, characterCard(9, "Unrelated"))
		seedStatus(t, dst, ownedStatus(unrelatedID))

		result, err := dst.ImportCollection(path, MergeReplace)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported)

		snap, err := dst.Snapshot()
		require.NoError(t, err)
		assert.Len(t, snap.Cards, 2)
		rows, err := dst.FindCardsByName("Unrelated")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("unknown strategy is rejected", func(t *testing.T) {
		dst := setupBackend(t)
		_, err := dst.ImportCollection(exportFixture(t), "merge-ish")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("record pointing outside the file counts failed", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "export.json")
		envelope := ExportEnvelope{
			ExportID: "test",
			Cards:    []types.Card{*characterCard(1, "Fream")},
			Collection: []types.CollectionStatus{
				{CardID: 777, AcquisitionMethod: types.AcquisitionPulled},
			},
		}
		data, err := json.Marshal(envelope)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		dst := setupBackend(t)
		result, err := dst.ImportCollection(path, MergeSkip)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Failed)
	})
}

func TestBackup(t *testing.T) {
	b := setupBackend(t)
	seedCard(t, b, characterCard(1, "Fream"))

	destDir := t.TempDir()
	first, err := b.Backup(destDir)
	require.NoError(t, err)
	second, err := b.Backup(destDir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "backup names must be unique")
	for _, path := range []string{first, second} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, destDir, filepath.Dir(path))
	}
}

func TestBackupRequiresAttached(t *testing.T) {
	b := NewBackend()
	_, err := b.Backup(t.TempDir())
	assert.ErrorIs(t, err, types.ErrVaultDetached)
}
