package usecase

import (
	"context"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// DetectColorsUseCase resolves the effective text and background colors of a
// rendered node: the text color computed on the node itself, and the first
// non-transparent background an ancestor paints behind it.
type DetectColorsUseCase struct {
	nodes  port.NodeResolver
	styles port.StyleResolver
}

// NewDetectColorsUseCase creates a new detection use case.
func NewDetectColorsUseCase(nodes port.NodeResolver, styles port.StyleResolver) *DetectColorsUseCase {
	return &DetectColorsUseCase{
		nodes:  nodes,
		styles: styles,
	}
}

// DetectColorsInput identifies the node to inspect.
type DetectColorsInput struct {
	// Target is the host's identifier for the node to inspect.
	Target entity.NodeID

	// Enabled gates detection. When false the call is a no-op and the
	// node resolver is not consulted at all.
	Enabled bool
}

// Execute resolves the effective colors for the target. It returns nil when
// detection is disabled or the target does not currently resolve to a node;
// both are normal outcomes, not failures. Detection itself never fails: a
// background that stays transparent up to the root is returned as-is.
func (uc *DetectColorsUseCase) Execute(ctx context.Context, input DetectColorsInput) *entity.DetectionResult {
	if !input.Enabled {
		return nil
	}

	node, ok := uc.nodes.Resolve(input.Target)
	if !ok || node == nil {
		logging.FromContext(ctx).Debug().
			Str("target", string(input.Target)).
			Msg("target not rendered, skipping detection")
		return nil
	}

	result := uc.DetectOn(ctx, node)

	logging.FromContext(ctx).Debug().
		Str("target", string(input.Target)).
		Str("text", result.TextColor.String()).
		Str("background", result.BackgroundColor.String()).
		Msg("colors detected")

	return result
}

// DetectOn runs detection for an already-resolved node. Callers that iterate
// a tree themselves (audits) use this to avoid resolving twice.
func (uc *DetectColorsUseCase) DetectOn(_ context.Context, node port.RenderedNode) *entity.DetectionResult {
	background := uc.styles.BackgroundColor(node)

	// Ascend while the background stays fully transparent and the parent
	// is an element that could paint one. Text color never walks: it
	// inherits, so the node's own computed value is already effective.
	cursor := node
	for background.IsTransparent() {
		parent := cursor.Parent()
		if parent == nil || parent.Kind() != port.KindElement {
			break
		}
		cursor = parent
		background = uc.styles.BackgroundColor(cursor)
	}

	return &entity.DetectionResult{
		TextColor:       uc.styles.TextColor(node),
		BackgroundColor: background,
	}
}
