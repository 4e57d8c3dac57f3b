package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/legible-dev/legible/internal/application/port"
)

// node wraps a parse node as a port.RenderedNode. Wrappers are cached per
// document so repeated Parent calls hand back the same handle.
type node struct {
	doc *Document
	n   *html.Node
}

// Kind maps parse node types onto the walk's taxonomy.
func (e *node) Kind() port.NodeKind {
	switch e.n.Type {
	case html.ElementNode:
		return port.KindElement
	case html.TextNode:
		return port.KindText
	case html.DocumentNode:
		return port.KindDocument
	default:
		return port.KindOther
	}
}

// Parent returns the parent node, or nil at the tree root.
func (e *node) Parent() port.RenderedNode {
	if e.n.Parent == nil {
		return nil
	}
	return e.doc.wrap(e.n.Parent)
}

// Path renders the element chain from the root, e.g.
// "html > body > div#main > p.lead".
func (e *node) Path() string {
	var segments []string
	for cur := e.n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		segments = append(segments, pathSegment(cur))
	}

	// collected bottom-up
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, " > ")
}

func pathSegment(n *html.Node) string {
	seg := n.Data
	if id := attrValue(n, "id"); id != "" {
		return seg + "#" + id
	}
	if classes := strings.Fields(attrValue(n, "class")); len(classes) > 0 {
		return seg + "." + classes[0]
	}
	return seg
}
