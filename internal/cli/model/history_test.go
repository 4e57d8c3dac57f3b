package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
)

func testAuditRecords() []*entity.AuditRecord {
	now := time.Now()
	return []*entity.AuditRecord{
		{ID: 1, Document: "index.html", Level: "aa", Targets: 3, Passed: 3, WorstRatio: 7.1, CreatedAt: now},
		{ID: 2, Document: "pricing.html", Level: "aa", Targets: 4, Passed: 2, Failed: 2, WorstRatio: 2.3, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, Document: "sub/about.html", Level: "aaa", Targets: 1, Indeterminate: 1, CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func newTestHistoryModel() HistoryModel {
	return NewHistoryModel(context.Background(), styles.NewTheme(), nil, 100)
}

func TestHistoryModelTabFilter(t *testing.T) {
	m := newTestHistoryModel()
	m.records = testAuditRecords()

	require.Equal(t, []int{3, 1}, m.tabCounts())
	require.Len(t, m.visibleRecords(), 3)

	m.tabs.SetActive(1)
	failing := m.visibleRecords()
	require.Len(t, failing, 1)
	assert.Equal(t, "pricing.html", failing[0].Document)
}

func TestHistoryModelSearchFilter(t *testing.T) {
	m := newTestHistoryModel()
	m.records = testAuditRecords()
	m.filter = "sub"

	visible := m.visibleRecords()
	require.Len(t, visible, 1)
	assert.Equal(t, "sub/about.html", visible[0].Document)
	assert.Equal(t, []int{1, 0}, m.tabCounts())
}

func TestHistoryModelRecordsLoaded(t *testing.T) {
	m := newTestHistoryModel()

	updated, _ := m.Update(recordsLoadedMsg{records: testAuditRecords()})
	hm, ok := updated.(HistoryModel)
	require.True(t, ok)
	require.Len(t, hm.records, 3)

	view := hm.View()
	assert.Contains(t, view, "index.html")
	assert.Contains(t, view, "pricing.html")
}

func TestHistoryModelLoadError(t *testing.T) {
	m := newTestHistoryModel()

	updated, _ := m.Update(recordsLoadedMsg{err: errors.New("database locked")})
	hm := updated.(HistoryModel)

	assert.Contains(t, hm.View(), "database locked")
}

func TestHistoryModelPurged(t *testing.T) {
	m := newTestHistoryModel()
	m.records = testAuditRecords()

	updated, cmd := m.Update(historyPurgedMsg{removed: 4})
	hm := updated.(HistoryModel)

	// A reload command follows a purge.
	require.NotNil(t, cmd)
	assert.Contains(t, hm.View(), "purged 4 old runs")
}

func TestHistoryModelEmptyView(t *testing.T) {
	m := newTestHistoryModel()

	assert.Contains(t, m.View(), "No audit runs recorded yet.")
}
