package repository

import (
	"context"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// AuditRepository defines operations for audit history persistence.
type AuditRepository interface {
	// Save persists a completed audit summary and fills in its ID.
	Save(ctx context.Context, record *entity.AuditRecord) error

	// ListRecent retrieves the most recent audits, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditRecord, error)

	// ListByDocument retrieves audits for one document, newest first.
	ListByDocument(ctx context.Context, document string, limit int) ([]*entity.AuditRecord, error)

	// LastFingerprint returns the fingerprint of the most recent audit
	// for a document, or "" when none exists.
	LastFingerprint(ctx context.Context, document string) (string, error)

	// Purge deletes audits older than the newest keep entries and
	// returns the number of rows removed.
	Purge(ctx context.Context, keep int) (int64, error)
}
