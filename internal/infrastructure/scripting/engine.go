// Package scripting runs user-supplied rule scripts against audit findings.
package scripting

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/grafana/sobek"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// Engine evaluates a JavaScript rule file against findings. The script must
// define a global function check(finding); whatever object it returns becomes
// an advisory note ({severity, message}). Rules can annotate findings but
// never change verdicts.
type Engine struct {
	path  string
	rt    *sobek.Runtime
	check sobek.Callable

	// Sobek runtimes are not safe for concurrent use, and batch audits
	// share one engine across goroutines.
	mu       sync.Mutex
	disabled bool
}

var _ port.RuleEngine = (*Engine)(nil)

// NewEngine loads and compiles the rule script at path.
func NewEngine(ctx context.Context, path string) (*Engine, error) {
	log := logging.FromContext(ctx).With().Str("component", "rules").Logger()

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule script: %w", err)
	}

	rt := sobek.New()
	if _, err := rt.RunString(string(src)); err != nil {
		return nil, fmt.Errorf("failed to evaluate rule script %s: %w", path, err)
	}

	check, ok := sobek.AssertFunction(rt.Get("check"))
	if !ok {
		return nil, fmt.Errorf("rule script %s does not define function check(finding)", path)
	}

	log.Debug().Str("script", path).Msg("rule script loaded")
	return &Engine{path: path, rt: rt, check: check}, nil
}

// Check runs the rules against a finding. A script error disables the engine
// for the rest of the run; the audit itself continues.
func (e *Engine) Check(ctx context.Context, finding entity.Finding) (port.RuleNote, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disabled || ctx.Err() != nil {
		return port.RuleNote{}, false
	}

	res, err := e.check(sobek.Undefined(), e.rt.ToValue(scriptFinding(finding)))
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("script", e.path).
			Str("path", finding.Path).
			Msg("rule script failed, disabling rules for this run")
		e.disabled = true
		return port.RuleNote{}, false
	}

	return exportNote(res)
}

// Path returns the script file the engine was loaded from.
func (e *Engine) Path() string {
	return e.path
}

// scriptFinding flattens a finding to primitive values under its wire
// names: finding.ratio, finding.text_color, finding.verdict. Named string
// types export into the runtime as Go objects, where strict equality
// against a string literal never holds.
func scriptFinding(f entity.Finding) map[string]any {
	return map[string]any{
		"target":           f.Target,
		"path":             f.Path,
		"text_color":       string(f.TextColor),
		"background_color": string(f.BackgroundColor),
		"ratio":            f.Ratio,
		"required":         f.Required,
		"verdict":          string(f.Verdict),
		"assumed":          f.Assumed,
		"suggestion":       string(f.Suggestion),
		"note":             f.Note,
		"note_severity":    f.NoteSeverity,
	}
}

func exportNote(v sobek.Value) (port.RuleNote, bool) {
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return port.RuleNote{}, false
	}

	obj, ok := v.Export().(map[string]any)
	if !ok {
		return port.RuleNote{}, false
	}

	note := port.RuleNote{Severity: "info"}
	if s, ok := obj["severity"].(string); ok && s != "" {
		note.Severity = s
	}
	if m, ok := obj["message"].(string); ok {
		note.Message = m
	}
	if note.Message == "" {
		return port.RuleNote{}, false
	}
	return note, true
}
