package usecase

import (
	"context"
	"fmt"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// InspectTargetUseCase runs detection and contrast evaluation for a single
// target and assembles a finding out of the outcome.
type InspectTargetUseCase struct {
	nodes   port.NodeResolver
	styles  port.StyleResolver
	detect  *DetectColorsUseCase
	checker contrast.Checker
	rules   port.RuleEngine
}

// NewInspectTargetUseCase creates a new inspection use case. The rule engine
// is optional; pass nil when no rule script is configured.
func NewInspectTargetUseCase(
	nodes port.NodeResolver,
	styles port.StyleResolver,
	detect *DetectColorsUseCase,
	checker contrast.Checker,
	rules port.RuleEngine,
) *InspectTargetUseCase {
	return &InspectTargetUseCase{
		nodes:   nodes,
		styles:  styles,
		detect:  detect,
		checker: checker,
		rules:   rules,
	}
}

// InspectTargetInput selects the node and options for one inspection.
type InspectTargetInput struct {
	Target  entity.NodeID
	Enabled bool

	// Suggest adds a passing replacement color to failed findings.
	Suggest bool
}

// InspectTargetOutput carries the detection and its evaluation. Both are nil
// when detection was disabled or the target is not rendered.
type InspectTargetOutput struct {
	Detection *entity.DetectionResult
	Finding   *entity.Finding
}

// Execute inspects a single target. Unresolvable targets yield an empty
// output, not an error; evaluation failures on host-reported colors do.
func (uc *InspectTargetUseCase) Execute(ctx context.Context, input InspectTargetInput) (*InspectTargetOutput, error) {
	if !input.Enabled {
		return &InspectTargetOutput{}, nil
	}

	node, ok := uc.nodes.Resolve(input.Target)
	if !ok || node == nil {
		logging.FromContext(ctx).Debug().
			Str("target", string(input.Target)).
			Msg("target not rendered, nothing to inspect")
		return &InspectTargetOutput{}, nil
	}

	det := uc.detect.DetectOn(ctx, node)

	sizePx, bold := uc.styles.TextStyle(node)
	ev, err := uc.checker.Evaluate(*det, contrast.TextStyle{SizePx: sizePx, Bold: bold})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate target %s: %w", input.Target, err)
	}

	finding := newFinding(string(input.Target), node.Path(), *det, ev)
	if input.Suggest {
		attachSuggestion(&finding, ev)
	}
	attachNote(ctx, uc.rules, &finding)

	logging.FromContext(ctx).Debug().
		Str("target", string(input.Target)).
		Str("verdict", string(finding.Verdict)).
		Float64("ratio", finding.Ratio).
		Msg("target inspected")

	return &InspectTargetOutput{Detection: det, Finding: &finding}, nil
}
