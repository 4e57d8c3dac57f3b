package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/watch"
	"github.com/legible-dev/legible/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func waitReport(t *testing.T, reports <-chan *entity.Report) *entity.Report {
	t.Helper()
	select {
	case r := <-reports:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a report")
		return nil
	}
}

// contentAudit builds a report whose fingerprint tracks the file content, so
// distinct writes produce distinct reports.
func contentAudit(t *testing.T) watch.AuditFunc {
	t.Helper()
	return func(_ context.Context, path string) (*entity.Report, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		report := entity.NewReport(path, "aa")
		report.Findings = []entity.Finding{{
			Path:            string(content),
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgb(255, 255, 255)",
			Verdict:         entity.VerdictPass,
		}}
		return report, nil
	}
}

func TestServiceRun_AuditsInitiallyAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>one</p>"), 0o644))

	reports := make(chan *entity.Report, 8)
	svc := watch.NewService(path, 20, contentAudit(t), func(r *entity.Report) { reports <- r })

	ctx, cancel := context.WithCancel(testCtx())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	first := waitReport(t, reports)
	assert.Contains(t, first.Findings[0].Path, "one")

	require.NoError(t, os.WriteFile(path, []byte("<p>two</p>"), 0o644))

	second := waitReport(t, reports)
	assert.Contains(t, second.Findings[0].Path, "two")

	cancel()
	require.NoError(t, <-done)
}

func TestServiceRun_SuppressesUnchangedReports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>same</p>"), 0o644))

	var audits atomic.Int32
	reports := make(chan *entity.Report, 8)
	audit := func(_ context.Context, p string) (*entity.Report, error) {
		audits.Add(1)
		report := entity.NewReport(p, "aa")
		report.Findings = []entity.Finding{{
			Path:            "html > body > p",
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgb(255, 255, 255)",
			Verdict:         entity.VerdictPass,
		}}
		return report, nil
	}
	svc := watch.NewService(path, 20, audit, func(r *entity.Report) { reports <- r })

	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	waitReport(t, reports)

	// A save that does not change the outcome re-audits but renders nothing.
	require.NoError(t, os.WriteFile(path, []byte("<p>same again</p>"), 0o644))
	require.Eventually(t, func() bool { return audits.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	select {
	case <-reports:
		t.Fatal("unchanged report should have been suppressed")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestServiceRun_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>x</p>"), 0o644))

	var audits atomic.Int32
	svc := watch.NewService(path, 20, func(_ context.Context, p string) (*entity.Report, error) {
		audits.Add(1)
		return entity.NewReport(p, "aa"), nil
	}, func(*entity.Report) {})

	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	require.Eventually(t, func() bool { return audits.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("<p>y</p>"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), audits.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestServiceRun_MissingDirectory(t *testing.T) {
	svc := watch.NewService(filepath.Join(t.TempDir(), "gone", "page.html"), 20,
		func(_ context.Context, p string) (*entity.Report, error) {
			return entity.NewReport(p, "aa"), nil
		}, func(*entity.Report) {})

	err := svc.Run(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
