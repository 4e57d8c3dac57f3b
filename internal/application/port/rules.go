package port

import (
	"context"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// RuleNote is an advisory annotation produced by a user rule script.
type RuleNote struct {
	Severity string
	Message  string
}

// RuleEngine runs user-supplied rule scripts over findings. Engines are
// advisory only: a broken script disables the engine, never the audit.
type RuleEngine interface {
	// Check runs the rules against a finding. ok is false when the rules
	// produced no note for it.
	Check(ctx context.Context, finding entity.Finding) (note RuleNote, ok bool)
}
