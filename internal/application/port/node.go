package port

import "github.com/legible-dev/legible/internal/domain/entity"

// NodeKind classifies rendered nodes for the ancestor walk.
type NodeKind int

const (
	// KindElement is a node that can paint styles of its own. The walk
	// only ascends into parents of this kind.
	KindElement NodeKind = iota

	// KindText is a text node.
	KindText

	// KindDocument is the tree root.
	KindDocument

	// KindOther covers comments, doctypes and anything else the walk
	// must stop at.
	KindOther
)

// RenderedNode is an opaque handle to a node in the host's rendered tree.
// The detector never inspects markup through it; it only asks for the kind,
// the parent and, via StyleResolver, the computed colors.
type RenderedNode interface {
	// Kind returns the node's kind.
	Kind() NodeKind

	// Parent returns the parent node, or nil at the tree root and for
	// detached nodes.
	Parent() RenderedNode

	// Path returns a human-readable location of the node in its tree,
	// e.g. "html > body > div#main". Used in findings, never for
	// resolution.
	Path() string
}

// NodeResolver resolves opaque target identifiers to rendered nodes.
// The detector consults it exactly once per detection pass, at the start.
type NodeResolver interface {
	// Resolve returns the node a target currently refers to. ok is false
	// when the target is not rendered right now; that is a normal outcome
	// between mount and paint, not an error.
	Resolve(target entity.NodeID) (node RenderedNode, ok bool)
}

// StyleResolver reports the host's computed styles for rendered nodes.
type StyleResolver interface {
	// TextColor returns the computed text color of the node itself.
	// Text color inherits, so this is already the effective value.
	TextColor(node RenderedNode) entity.ResolvedColor

	// BackgroundColor returns the computed background color of the node
	// itself, without ancestor backgrounds showing through. Nodes that
	// paint no background report entity.Transparent.
	BackgroundColor(node RenderedNode) entity.ResolvedColor

	// TextStyle returns the computed font size in CSS pixels and whether
	// the weight is bold, for contrast threshold selection.
	TextStyle(node RenderedNode) (sizePx float64, bold bool)
}
