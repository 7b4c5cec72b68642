// Package sqlite implements the SQLite storage backend for chemical records.
// SQLite is the query engine; one JSONL file per record type is the source
// of truth. Rows cross the storage boundary only as ordered scalar values,
// hydrated and dehydrated through each record type's schema.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// dbFileName is the SQLite cache rebuilt from JSONL on every Attach.
const dbFileName = "chemicals.db"

// Backend implements the Cupboard interface using SQLite as the query engine
// and JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]*table
	records  []types.RecordType
	logger   *zap.SugaredLogger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for attach, load and write events.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *Backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRecordTypes restricts the backend to the given record types. The
// default is every standard record type.
func WithRecordTypes(records ...types.RecordType) Option {
	return func(b *Backend) {
		b.records = records
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		tables:  make(map[string]*table),
		records: types.RecordTypes(),
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrCupboardDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCupboardDetached
	}

	t, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return t, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, builds the SQLite schema from the
// record schemas, creates missing JSONL files and loads them. Lines that
// fail to load stay in their file across later writes.
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

	// The database is a cache of the JSONL files; start from a fresh schema.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if err := createSchema(db, b.records); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	if err := initJSONLFiles(dataDir, b.records); err != nil {
		db.Close()
		return err
	}

	rejected, err := loadAllJSONL(db, dataDir, b.records, b.logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	config.DataDir = dataDir
	b.db = db
	b.config = config
	b.attached = true

	for _, rt := range b.records {
		b.tables[rt.Name()] = newTable(b, rt, rejected[rt.Name()])
	}

	b.logger.Infow("cupboard attached",
		"backend", config.Backend,
		"data_dir", dataDir,
		"tables", len(b.tables))
	return nil
}

// Detach releases all resources held by the backend.
// After Detach, all operations return ErrCupboardDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]*table)

	b.logger.Infow("cupboard detached", "data_dir", b.config.DataDir)
	return nil
}

// initJSONLFiles creates an empty JSONL file for every record type that does
// not have one yet.
func initJSONLFiles(dataDir string, records []types.RecordType) error {
	for _, rt := range records {
		path := jsonlPath(dataDir, rt)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}

// jsonlPath returns the JSONL file holding rows of rt.
func jsonlPath(dataDir string, rt types.RecordType) string {
	return filepath.Join(dataDir, rt.Name()+".jsonl")
}
