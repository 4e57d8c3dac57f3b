package usecase

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// AuditDocumentUseCase evaluates every text-bearing node of a document and
// aggregates the findings into a report.
type AuditDocumentUseCase struct {
	styles  port.StyleResolver
	detect  *DetectColorsUseCase
	checker contrast.Checker
	rules   port.RuleEngine
}

// NewAuditDocumentUseCase creates a new audit use case. The rule engine is
// optional; pass nil when no rule script is configured.
func NewAuditDocumentUseCase(
	styles port.StyleResolver,
	detect *DetectColorsUseCase,
	checker contrast.Checker,
	rules port.RuleEngine,
) *AuditDocumentUseCase {
	return &AuditDocumentUseCase{
		styles:  styles,
		detect:  detect,
		checker: checker,
		rules:   rules,
	}
}

// AuditDocumentInput carries one document's nodes into an audit.
type AuditDocumentInput struct {
	// Document labels the report, typically the file path or URL.
	Document string

	// Nodes are the text-bearing nodes to evaluate, in document order.
	Nodes []port.RenderedNode

	// Suggest adds passing replacement colors to failed findings.
	Suggest bool
}

// Execute audits a single document. Nodes whose colors cannot be parsed stay
// in the report with an indeterminate verdict instead of aborting the run.
func (uc *AuditDocumentUseCase) Execute(ctx context.Context, input AuditDocumentInput) (*entity.Report, error) {
	log := logging.FromContext(ctx)
	start := time.Now()
	report := entity.NewReport(input.Document, string(uc.checker.Level))

	for _, node := range input.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		det := uc.detect.DetectOn(ctx, node)
		sizePx, bold := uc.styles.TextStyle(node)

		ev, err := uc.checker.Evaluate(*det, contrast.TextStyle{SizePx: sizePx, Bold: bold})
		if err != nil {
			log.Warn().Err(err).Str("path", node.Path()).Msg("colors could not be evaluated")
			report.Findings = append(report.Findings, entity.Finding{
				Path:            node.Path(),
				TextColor:       det.TextColor,
				BackgroundColor: det.BackgroundColor,
				Verdict:         entity.VerdictIndeterminate,
				Note:            err.Error(),
				NoteSeverity:    "warning",
			})
			continue
		}

		finding := newFinding("", node.Path(), *det, ev)
		if input.Suggest {
			attachSuggestion(&finding, ev)
		}
		attachNote(ctx, uc.rules, &finding)
		report.Findings = append(report.Findings, finding)
	}

	report.Duration = time.Since(start)

	passed, failed, indeterminate := report.Counts()
	log.Debug().
		Str("document", input.Document).
		Int("passed", passed).
		Int("failed", failed).
		Int("indeterminate", indeterminate).
		Dur("took", report.Duration).
		Msg("document audited")

	return report, nil
}

// ExecuteBatch audits several documents concurrently and returns the reports
// in input order. The first failing document cancels the rest.
func (uc *AuditDocumentUseCase) ExecuteBatch(ctx context.Context, inputs []AuditDocumentInput) ([]*entity.Report, error) {
	reports := make([]*entity.Report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, input := range inputs {
		g.Go(func() error {
			report, err := uc.Execute(gctx, input)
			if err != nil {
				return fmt.Errorf("failed to audit %s: %w", input.Document, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
