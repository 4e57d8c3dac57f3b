package markup

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/pkg/csscolor"
)

// UA defaults for a styleless document.
const (
	defaultTextColor = entity.ResolvedColor("rgb(0, 0, 0)")
	defaultFontPx    = 16.0
)

// TextColor returns the effective text color: the nearest color declaration
// on the node or an ancestor, normalized to computed-style form. Color
// inherits, so the nearest declaration is already the value a reader sees.
func (d *Document) TextColor(rn port.RenderedNode) entity.ResolvedColor {
	n := d.unwrap(rn)
	if n == nil {
		return defaultTextColor
	}
	return d.effectiveTextColor(n)
}

func (d *Document) effectiveTextColor(n *html.Node) entity.ResolvedColor {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		if c, ok := ownTextColor(cur); ok {
			return c
		}
	}
	return defaultTextColor
}

// ownTextColor reads a color declared on the element itself: the style
// attribute first, then the legacy font[color] and body[text] attributes.
// currentcolor and unparseable values count as undeclared, so inheritance
// keeps going.
func ownTextColor(n *html.Node) (entity.ResolvedColor, bool) {
	if v, ok := styleDecl(n, "color"); ok && v != "currentcolor" && v != "inherit" {
		if c, err := csscolor.Parse(v); err == nil {
			return entity.ResolvedColor(c.String()), true
		}
	}

	switch n.Data {
	case "font":
		if v := attrValue(n, "color"); v != "" {
			if c, err := csscolor.Parse(v); err == nil {
				return entity.ResolvedColor(c.String()), true
			}
		}
	case "body":
		if v := attrValue(n, "text"); v != "" {
			if c, err := csscolor.Parse(v); err == nil {
				return entity.ResolvedColor(c.String()), true
			}
		}
	}
	return "", false
}

// legacyBgcolor lists the tags whose bgcolor attribute browsers honor.
var legacyBgcolor = map[string]bool{
	"body":  true,
	"table": true,
	"tr":    true,
	"td":    true,
	"th":    true,
}

// BackgroundColor returns the background the node paints itself. Background
// never inherits; nodes that paint nothing report the transparent sentinel,
// and so do image or gradient backgrounds with no color layer. Precedence:
// background-color, then the background shorthand, then legacy bgcolor.
func (d *Document) BackgroundColor(rn port.RenderedNode) entity.ResolvedColor {
	n := d.unwrap(rn)
	if n == nil || n.Type != html.ElementNode {
		return entity.Transparent
	}

	if v, ok := styleDecl(n, "background-color"); ok {
		if c, ok := d.resolveColorValue(n, v); ok {
			return c
		}
	}

	if v, ok := styleDecl(n, "background"); ok {
		for _, token := range splitShorthand(v) {
			if c, ok := d.resolveColorValue(n, token); ok {
				return c
			}
		}
	}

	if legacyBgcolor[n.Data] {
		if v := attrValue(n, "bgcolor"); v != "" {
			if c, err := csscolor.Parse(v); err == nil {
				return entity.ResolvedColor(c.String())
			}
		}
	}

	return entity.Transparent
}

// splitShorthand splits a shorthand value on spaces while keeping function
// arguments together, so "rgb(0, 0, 0) url(bg.png)" yields two tokens.
func splitShorthand(v string) []string {
	var out []string
	depth := 0
	start := -1
	for i, r := range v {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ' ' && depth == 0:
			if start >= 0 {
				out = append(out, v[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, v[start:])
	}
	return out
}

// resolveColorValue normalizes one declared color value, resolving
// currentcolor against the element's effective text color.
func (d *Document) resolveColorValue(n *html.Node, v string) (entity.ResolvedColor, bool) {
	if v == "currentcolor" {
		return d.effectiveTextColor(n), true
	}
	if c, err := csscolor.Parse(v); err == nil {
		return entity.ResolvedColor(c.String()), true
	}
	return "", false
}

// headingEm maps heading tags to their UA font-size factor, relative to the
// inherited size.
var headingEm = map[string]float64{
	"h1": 2.0,
	"h2": 1.5,
	"h3": 1.17,
	"h4": 1.0,
	"h5": 0.83,
	"h6": 0.67,
}

// boldTags render bold without any declaration.
var boldTags = map[string]bool{
	"b": true, "strong": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// TextStyle returns the effective font size in CSS pixels and whether the
// weight is bold. Relative units resolve against the parent; headings and
// bold tags carry the UA defaults.
func (d *Document) TextStyle(rn port.RenderedNode) (float64, bool) {
	n := d.unwrap(rn)
	if n == nil {
		return defaultFontPx, false
	}
	return d.effectiveFontSize(n), effectiveBold(n)
}

func (d *Document) effectiveFontSize(n *html.Node) float64 {
	if n == nil {
		return defaultFontPx
	}

	base := defaultFontPx
	if parent := parentElement(n); parent != nil {
		base = d.effectiveFontSize(parent)
	}

	if n.Type != html.ElementNode {
		return base
	}
	if v, ok := styleDecl(n, "font-size"); ok {
		if px, ok := resolveFontSize(v, base); ok {
			return px
		}
	}
	if em, ok := headingEm[n.Data]; ok {
		return em * base
	}
	return base
}

func parentElement(n *html.Node) *html.Node {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode {
			return cur
		}
	}
	return nil
}

// resolveFontSize converts a font-size declaration to CSS pixels. Keywords
// and unitless values are ignored.
func resolveFontSize(v string, parentPx float64) (float64, bool) {
	parse := func(suffix string) (float64, bool) {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, suffix), 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return f, true
	}

	switch {
	case strings.HasSuffix(v, "px"):
		return parse("px")
	case strings.HasSuffix(v, "pt"):
		f, ok := parse("pt")
		return f * 96 / 72, ok
	case strings.HasSuffix(v, "rem"):
		f, ok := parse("rem")
		return f * defaultFontPx, ok
	case strings.HasSuffix(v, "em"):
		f, ok := parse("em")
		return f * parentPx, ok
	case strings.HasSuffix(v, "%"):
		f, ok := parse("%")
		return f / 100 * parentPx, ok
	}
	return 0, false
}

func effectiveBold(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		if v, ok := styleDecl(cur, "font-weight"); ok {
			return parseWeight(v)
		}
		if boldTags[cur.Data] {
			return true
		}
	}
	return false
}

func parseWeight(v string) bool {
	switch v {
	case "bold", "bolder":
		return true
	case "normal", "lighter":
		return false
	}
	if w, err := strconv.Atoi(v); err == nil {
		return w >= 600
	}
	return false
}

// styleDecl reads one property from the element's style attribute. The last
// declaration of a property wins, matching cascade order within a single
// attribute.
func styleDecl(n *html.Node, prop string) (string, bool) {
	style := attrValue(n, "style")
	if style == "" {
		return "", false
	}

	var (
		value string
		found bool
	)
	for _, decl := range strings.Split(style, ";") {
		name, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(name), prop) {
			continue
		}
		v = strings.ToLower(strings.TrimSpace(v))
		v = strings.TrimSpace(strings.ReplaceAll(v, "!important", ""))
		value, found = v, true
	}
	return value, found
}
