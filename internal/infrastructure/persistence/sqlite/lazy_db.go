package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/logging"
)

// LazyDB implements port.DatabaseProvider with lazy initialization. Opening
// the database compiles the SQLite WASM binary and runs migrations, a few
// hundred milliseconds that inspect and unsaved audits never need to pay, so
// the connection is only established when a command first touches history.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy database provider. The connection is not
// established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it on first call.
// Safe for concurrent use; initialization happens exactly once.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() { l.init(ctx) })

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

func (l *LazyDB) init(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.dbPath).Msg("opening audit database")

	db, err := NewConnection(ctx, l.dbPath)
	if err != nil {
		log.Error().Err(err).Msg("audit database initialization failed")
	}

	l.mu.Lock()
	l.db, l.err = db, err
	l.mu.Unlock()
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized reports whether the connection has been established.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
