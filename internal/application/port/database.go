// Package port defines the collaborator contracts the use cases depend on.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the audit database connection.
// Implementations may initialize the database lazily on first access, so
// commands that never touch history do not pay for opening it.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	// Returns an error if initialization fails.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// IsInitialized reports whether the database has been initialized.
	IsInitialized() bool
}
