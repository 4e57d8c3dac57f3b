package usecase

import (
	"context"
	"math"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
)

// newFinding assembles a finding from a detection result and its evaluation.
// The colors recorded are the detected ones, not the composited values; the
// Assumed flag marks findings measured against an assumed backdrop.
func newFinding(target, path string, det entity.DetectionResult, ev contrast.Evaluation) entity.Finding {
	f := entity.Finding{
		Target:          target,
		Path:            path,
		TextColor:       det.TextColor,
		BackgroundColor: det.BackgroundColor,
		Required:        ev.Required,
		Verdict:         ev.Verdict,
	}
	if ev.Verdict != entity.VerdictIndeterminate {
		f.Ratio = math.Round(ev.Ratio*100) / 100
		f.Assumed = ev.Assumed
	}
	return f
}

// attachSuggestion adds a passing replacement text color to failed findings.
func attachSuggestion(f *entity.Finding, ev contrast.Evaluation) {
	if f.Verdict != entity.VerdictFail {
		return
	}
	if suggested, ok := contrast.Suggest(ev.Text, ev.Background, ev.Required); ok {
		f.Suggestion = entity.ResolvedColor(suggested.String())
	}
}

// attachNote runs the optional rule engine over a finding. Rule engines are
// advisory; when nothing matches the finding is left untouched.
func attachNote(ctx context.Context, rules port.RuleEngine, f *entity.Finding) {
	if rules == nil {
		return
	}
	if note, ok := rules.Check(ctx, *f); ok {
		f.Note = note.Message
		f.NoteSeverity = note.Severity
	}
}
