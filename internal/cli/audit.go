package cli

import (
	"context"
	"os"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/markup"
	"github.com/legible-dev/legible/internal/logging"
)

// AuditOptions carries per-invocation audit settings. Empty Level and Policy
// fall back to config.
type AuditOptions struct {
	Level   string
	Policy  string
	Suggest bool
	Rules   port.RuleEngine
}

// AuditFile parses and audits one document. The path "-" reads stdin.
func (a *App) AuditFile(ctx context.Context, path string, opts AuditOptions) (*entity.Report, error) {
	reports, err := a.AuditFiles(ctx, []string{path}, opts)
	if err != nil {
		return nil, err
	}
	return reports[0], nil
}

// AuditFiles parses and audits several documents, concurrently when more than
// one is given. Reports come back in argument order.
func (a *App) AuditFiles(ctx context.Context, paths []string, opts AuditOptions) ([]*entity.Report, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	checker, err := a.Checker(opts.Level, opts.Policy)
	if err != nil {
		return nil, err
	}

	var first *markup.Document
	inputs := make([]usecase.AuditDocumentInput, 0, len(paths))
	for _, path := range paths {
		doc, err := parseDocument(path)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = doc
		}
		inputs = append(inputs, usecase.AuditDocumentInput{
			Document: doc.Name(),
			Nodes:    doc.TextNodes(),
			Suggest:  opts.Suggest,
		})
	}

	// Style resolution reads the node's own document, so one use case
	// serves every input.
	detect := usecase.NewDetectColorsUseCase(first, first)
	audit := usecase.NewAuditDocumentUseCase(first, detect, checker, opts.Rules)

	if len(inputs) == 1 {
		report, err := audit.Execute(ctx, inputs[0])
		if err != nil {
			return nil, err
		}
		return []*entity.Report{report}, nil
	}
	return audit.ExecuteBatch(ctx, inputs)
}

func parseDocument(path string) (*markup.Document, error) {
	if path == "-" {
		return markup.Parse("stdin", os.Stdin)
	}
	return markup.ParseFile(path)
}

// SaveReport records the report in history unless auto-save is off or the
// findings are unchanged since the previous run on the same document.
func (a *App) SaveReport(ctx context.Context, report *entity.Report) error {
	if !a.Config.History.AutoSave {
		return nil
	}

	history, err := a.History(ctx)
	if err != nil {
		return err
	}
	if history.Unchanged(ctx, report) {
		logging.FromContext(ctx).Debug().Str("document", report.Document).Msg("findings unchanged, not recorded")
		return nil
	}

	_, err = history.Record(ctx, report)
	return err
}
