package usecase

import (
	"context"
	"fmt"

	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/domain/repository"
	"github.com/legible-dev/legible/internal/logging"
)

// ManageHistoryUseCase records and retrieves persisted audit summaries.
type ManageHistoryUseCase struct {
	auditRepo repository.AuditRepository
}

// NewManageHistoryUseCase creates a new history use case.
func NewManageHistoryUseCase(auditRepo repository.AuditRepository) *ManageHistoryUseCase {
	return &ManageHistoryUseCase{
		auditRepo: auditRepo,
	}
}

// Record persists a summary of the report and returns it with its ID set.
func (uc *ManageHistoryUseCase) Record(ctx context.Context, report *entity.Report) (*entity.AuditRecord, error) {
	record := entity.NewAuditRecord(report)
	if err := uc.auditRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record audit: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int64("id", record.ID).
		Str("document", record.Document).
		Msg("audit recorded")

	return record, nil
}

// Unchanged reports whether the report's outcome matches the most recently
// recorded audit of the same document.
func (uc *ManageHistoryUseCase) Unchanged(ctx context.Context, report *entity.Report) bool {
	last, err := uc.auditRepo.LastFingerprint(ctx, report.Document)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("could not read last fingerprint")
		return false
	}
	return last != "" && last == report.Fingerprint()
}

// ListRecent retrieves the most recent audits, newest first.
func (uc *ManageHistoryUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.AuditRecord, error) {
	if limit <= 0 {
		limit = 20 // Default limit
	}

	records, err := uc.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	return records, nil
}

// ListByDocument retrieves the most recent audits of one document.
func (uc *ManageHistoryUseCase) ListByDocument(ctx context.Context, document string, limit int) ([]*entity.AuditRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	records, err := uc.auditRepo.ListByDocument(ctx, document, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits for %s: %w", document, err)
	}
	return records, nil
}

// Purge trims history down to the newest keep entries and returns how many
// rows were removed.
func (uc *ManageHistoryUseCase) Purge(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	removed, err := uc.auditRepo.Purge(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit history: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int64("removed", removed).
		Int("kept", keep).
		Msg("audit history purged")

	return removed, nil
}
