// Package markup adapts parsed HTML documents to the rendered-node and
// computed-style contracts. It implements a small static rendering model:
// inline styles and legacy presentational attributes only. Stylesheets,
// scripts and layout are out of scope; hosts with a real rendering engine
// plug in their own resolvers instead.
package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
)

// Document is a parsed HTML document. It implements port.NodeResolver and
// port.StyleResolver over the parsed tree.
type Document struct {
	name  string
	root  *html.Node
	wraps map[*html.Node]*node
}

// Compile-time interface checks.
var (
	_ port.NodeResolver  = (*Document)(nil)
	_ port.StyleResolver = (*Document)(nil)
)

// Parse reads and parses an HTML document. The name labels the document in
// paths and reports; it plays no role in resolution.
func Parse(name string, r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &Document{
		name:  name,
		root:  root,
		wraps: make(map[*html.Node]*node),
	}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(name, content string) (*Document, error) {
	return Parse(name, strings.NewReader(content))
}

// ParseFile parses an HTML document from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(path, f)
}

// Name returns the document's label.
func (d *Document) Name() string {
	return d.name
}

// Resolve maps a target to a rendered node. Supported target forms are
// "#id", "tag", ".class" and "tag.class"; the first match in document order
// wins. The empty target never resolves.
func (d *Document) Resolve(target entity.NodeID) (port.RenderedNode, bool) {
	sel, ok := parseSelector(string(target))
	if !ok {
		return nil, false
	}

	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && sel.matches(n) {
			found = n
			return false
		}
		return true
	})

	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

// TextNodes returns the element nodes that directly contain rendered text,
// in document order. Elements inside non-rendered subtrees (head, script,
// style, template) are excluded.
func (d *Document) TextNodes() []port.RenderedNode {
	var out []port.RenderedNode
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if skippedElements[n.Data] {
				return false // prune the subtree
			}
			if hasDirectText(n) {
				out = append(out, d.wrap(n))
			}
		}
		return true
	})
	return out
}

// skippedElements never render their text content.
var skippedElements = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
	"title":    true,
}

func hasDirectText(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

// walk runs fn over the tree depth-first. Returning false from fn prunes
// the node's subtree; the traversal itself continues.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func (d *Document) wrap(n *html.Node) *node {
	if w, ok := d.wraps[n]; ok {
		return w
	}
	w := &node{doc: d, n: n}
	d.wraps[n] = w
	return w
}

// unwrap recovers the underlying parse node. Foreign RenderedNode
// implementations yield nil and callers fall back to defaults.
func (d *Document) unwrap(rn port.RenderedNode) *html.Node {
	if w, ok := rn.(*node); ok && w != nil {
		return w.n
	}
	return nil
}

// selector is the minimal target grammar: an id, or a tag with an optional
// class.
type selector struct {
	tag   string
	id    string
	class string
}

func parseSelector(s string) (selector, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return selector{}, false
	}

	// Ids stay verbatim; they are case-sensitive in HTML.
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if rest == "" {
			return selector{}, false
		}
		return selector{id: rest}, true
	}

	var sel selector
	if tag, class, found := strings.Cut(s, "."); found {
		if class == "" {
			return selector{}, false
		}
		sel.tag = strings.ToLower(tag)
		sel.class = strings.ToLower(class)
	} else {
		sel.tag = strings.ToLower(s)
	}
	return sel, sel.tag != "" || sel.class != ""
}

func (sel selector) matches(n *html.Node) bool {
	if sel.id != "" {
		return attrValue(n, "id") == sel.id
	}
	if sel.tag != "" && n.Data != sel.tag {
		return false
	}
	if sel.class != "" && !hasClass(n, sel.class) {
		return false
	}
	return true
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}
