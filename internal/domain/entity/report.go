package entity

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Verdict classifies the outcome of a contrast evaluation.
type Verdict string

const (
	// VerdictPass means the measured ratio meets the required minimum.
	VerdictPass Verdict = "pass"

	// VerdictFail means the measured ratio falls below the required minimum.
	VerdictFail Verdict = "fail"

	// VerdictIndeterminate means no ratio could be measured, typically
	// because the background stayed transparent up to the root.
	VerdictIndeterminate Verdict = "indeterminate"
)

// Finding is the contrast evaluation of a single rendered node.
type Finding struct {
	Target          string        `json:"target,omitempty"`
	Path            string        `json:"path"`
	TextColor       ResolvedColor `json:"text_color"`
	BackgroundColor ResolvedColor `json:"background_color"`
	Ratio           float64       `json:"ratio"`
	Required        float64       `json:"required"`
	Verdict         Verdict       `json:"verdict"`
	Assumed         bool          `json:"assumed,omitempty"`
	Suggestion      ResolvedColor `json:"suggestion,omitempty"`
	Note            string        `json:"note,omitempty"`
	NoteSeverity    string        `json:"note_severity,omitempty"`
}

// Report aggregates the findings of one document audit.
type Report struct {
	Document  string        `json:"document"`
	Level     string        `json:"level"`
	Findings  []Finding     `json:"findings"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewReport creates an empty report for a document.
func NewReport(document, level string) *Report {
	return &Report{
		Document:  document,
		Level:     level,
		CreatedAt: time.Now(),
	}
}

// Counts returns the number of findings per verdict.
func (r *Report) Counts() (passed, failed, indeterminate int) {
	for _, f := range r.Findings {
		switch f.Verdict {
		case VerdictPass:
			passed++
		case VerdictFail:
			failed++
		case VerdictIndeterminate:
			indeterminate++
		}
	}
	return passed, failed, indeterminate
}

// Failed reports whether any finding failed.
func (r *Report) Failed() bool {
	for _, f := range r.Findings {
		if f.Verdict == VerdictFail {
			return true
		}
	}
	return false
}

// WorstRatio returns the lowest measured ratio across evaluated findings,
// or 0 when nothing was measured.
func (r *Report) WorstRatio() float64 {
	worst := 0.0
	for _, f := range r.Findings {
		if f.Verdict == VerdictIndeterminate {
			continue
		}
		if worst == 0 || f.Ratio < worst {
			worst = f.Ratio
		}
	}
	return worst
}

// Fingerprint returns a stable hash over the report's findings. Two runs
// over the same document with the same outcome produce the same value, so
// watchers can skip re-rendering unchanged results.
func (r *Report) Fingerprint() string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only reachable with an oversized key, and we pass none
		panic(err)
	}
	_, _ = io.WriteString(h, r.Document)
	for _, f := range r.Findings {
		_, _ = fmt.Fprintf(h, "\x00%s\x00%s\x00%s\x00%s", f.Path, f.TextColor, f.BackgroundColor, f.Verdict)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// AuditRecord is a persisted summary of a completed document audit.
type AuditRecord struct {
	ID            int64     `json:"id"`
	Document      string    `json:"document"`
	Level         string    `json:"level"`
	Targets       int64     `json:"targets"`
	Passed        int64     `json:"passed"`
	Failed        int64     `json:"failed"`
	Indeterminate int64     `json:"indeterminate"`
	WorstRatio    float64   `json:"worst_ratio"`
	Fingerprint   string    `json:"fingerprint"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewAuditRecord summarizes a report for persistence.
func NewAuditRecord(r *Report) *AuditRecord {
	passed, failed, indeterminate := r.Counts()
	return &AuditRecord{
		Document:      r.Document,
		Level:         r.Level,
		Targets:       int64(len(r.Findings)),
		Passed:        int64(passed),
		Failed:        int64(failed),
		Indeterminate: int64(indeterminate),
		WorstRatio:    r.WorstRatio(),
		Fingerprint:   r.Fingerprint(),
		DurationMs:    r.Duration.Milliseconds(),
		CreatedAt:     r.CreatedAt,
	}
}
