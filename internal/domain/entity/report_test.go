package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/domain/entity"
)

func sampleReport() *entity.Report {
	r := entity.NewReport("page.html", "aa")
	r.Duration = 42 * time.Millisecond
	r.Findings = []entity.Finding{
		{Path: "body > p", TextColor: "rgb(0, 0, 0)", BackgroundColor: "rgb(255, 255, 255)", Ratio: 21, Required: 4.5, Verdict: entity.VerdictPass},
		{Path: "body > div > span", TextColor: "rgb(119, 119, 119)", BackgroundColor: "rgb(255, 255, 255)", Ratio: 4.48, Required: 4.5, Verdict: entity.VerdictFail},
		{Path: "body > footer", TextColor: "rgb(0, 0, 0)", BackgroundColor: entity.Transparent, Verdict: entity.VerdictIndeterminate},
	}
	return r
}

func TestReportCounts(t *testing.T) {
	passed, failed, indeterminate := sampleReport().Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, indeterminate)
}

func TestReportFailed(t *testing.T) {
	r := sampleReport()
	assert.True(t, r.Failed())

	r.Findings = r.Findings[:1]
	assert.False(t, r.Failed())
}

func TestReportWorstRatio(t *testing.T) {
	r := sampleReport()
	assert.InDelta(t, 4.48, r.WorstRatio(), 0.001)

	empty := entity.NewReport("page.html", "aa")
	assert.Zero(t, empty.WorstRatio())
}

func TestReportFingerprintStable(t *testing.T) {
	a := sampleReport().Fingerprint()
	b := sampleReport().Fingerprint()
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex-encoded blake2b-256
}

func TestReportFingerprintChangesWithVerdict(t *testing.T) {
	r := sampleReport()
	before := r.Fingerprint()

	r.Findings[1].Verdict = entity.VerdictPass
	assert.NotEqual(t, before, r.Fingerprint())
}

func TestNewAuditRecord(t *testing.T) {
	rec := entity.NewAuditRecord(sampleReport())
	require.NotNil(t, rec)

	assert.Equal(t, "page.html", rec.Document)
	assert.Equal(t, "aa", rec.Level)
	assert.Equal(t, int64(3), rec.Targets)
	assert.Equal(t, int64(1), rec.Passed)
	assert.Equal(t, int64(1), rec.Failed)
	assert.Equal(t, int64(1), rec.Indeterminate)
	assert.InDelta(t, 4.48, rec.WorstRatio, 0.001)
	assert.Equal(t, int64(42), rec.DurationMs)
	assert.NotEmpty(t, rec.Fingerprint)
}
