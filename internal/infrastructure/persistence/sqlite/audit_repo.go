package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/domain/repository"
	"github.com/legible-dev/legible/internal/logging"
)

const auditColumns = "id, document, level, targets, passed, failed, indeterminate, worst_ratio, fingerprint, duration_ms, created_at"

type auditRepo struct {
	db *sql.DB
}

// NewAuditRepository creates a new SQLite-backed audit repository.
func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Save(ctx context.Context, record *entity.AuditRecord) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("document", record.Document).Str("level", record.Level).Msg("saving audit record")

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_runs (document, level, targets, passed, failed, indeterminate, worst_ratio, fingerprint, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Document, record.Level, record.Targets, record.Passed, record.Failed,
		record.Indeterminate, record.WorstRatio, record.Fingerprint, record.DurationMs, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read audit record id: %w", err)
	}
	record.ID = id
	return nil
}

func (r *auditRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+auditColumns+` FROM audit_runs
		ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectRecords(rows)
}

func (r *auditRepo) ListByDocument(ctx context.Context, document string, limit int) ([]*entity.AuditRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+auditColumns+` FROM audit_runs
		WHERE document = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`, document, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectRecords(rows)
}

func (r *auditRepo) LastFingerprint(ctx context.Context, document string) (string, error) {
	var fingerprint string
	err := r.db.QueryRowContext(ctx, `
		SELECT fingerprint FROM audit_runs
		WHERE document = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, document).Scan(&fingerprint)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return fingerprint, nil
}

func (r *auditRepo) Purge(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM audit_runs WHERE id NOT IN (
			SELECT id FROM audit_runs ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit records: %w", err)
	}
	return res.RowsAffected()
}

func collectRecords(rows *sql.Rows) ([]*entity.AuditRecord, error) {
	records := []*entity.AuditRecord{}
	for rows.Next() {
		rec := &entity.AuditRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.Document, &rec.Level, &rec.Targets, &rec.Passed, &rec.Failed,
			&rec.Indeterminate, &rec.WorstRatio, &rec.Fingerprint, &rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
