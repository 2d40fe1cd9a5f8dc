// Package sqlite implements the SQLite storage backend for the binder
// system. The backend owns a single database file under the configured
// data directory and exposes the catalog and collection tables through
// the types.Vault interface, plus the joined query and snapshot
// operations the rest of the system builds on.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/deckmint/binder/pkg/logging"
	"github.com/deckmint/binder/pkg/types"
)

// DatabaseFileName is the SQLite file created under the data directory.
const DatabaseFileName = "binder.db"

// Backend implements the types.Vault interface using SQLite as both the
// query engine and the durable store.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
	log      logging.Logger
}

// Compile-time interface checks.
var (
	_ types.Vault   = (*Backend)(nil)
	_ types.Querier = (*Backend)(nil)
)

// NewBackend creates a new SQLite backend instance with silent logging.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return NewBackendWithLogger(logging.NewNop())
}

// NewBackendWithLogger creates a new SQLite backend that logs through the
// given logger.
func NewBackendWithLogger(log logging.Logger) *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
		log:    log,
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrVaultDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrVaultDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the database file, applies the
// schema, and creates table accessors.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.tables[types.CardsTable] = &cardsTable{backend: b}
	b.tables[types.CollectionTable] = &collectionTable{backend: b}

	b.log.Info("vault attached", map[string]any{"db": dbPath})
	return nil
}

// Detach releases all resources held by the backend. Closes the SQLite
// connection. After Detach, all operations return ErrVaultDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]types.Table)

	b.log.Info("vault detached", nil)
	return nil
}

// DatabasePath returns the location of the backing database file.
func (b *Backend) DatabasePath() string {
	dataDir := b.config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, DatabaseFileName)
}

// requireAttached returns the live database handle, or ErrVaultDetached.
// Table accessors call it at the top of every operation.
func (b *Backend) requireAttached() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached || b.db == nil {
		return nil, types.ErrVaultDetached
	}
	return b.db, nil
}
