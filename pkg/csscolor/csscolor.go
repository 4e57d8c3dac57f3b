// Package csscolor parses CSS color values and formats them the way computed
// styles report them: "rgb(r, g, b)" for opaque colors and "rgba(r, g, b, a)"
// otherwise. It accepts hex notation (3, 4, 6 and 8 digits), rgb()/rgba(),
// hsl()/hsla() in both legacy comma and modern space syntax, the transparent
// keyword and the SVG 1.1 named colors.
package csscolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an sRGB color with an alpha channel in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent is the fully transparent color.
var Transparent = Color{0, 0, 0, 0}

// Parse parses a CSS color value. The input is case-insensitive and may carry
// surrounding whitespace.
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case v == "":
		return Color{}, fmt.Errorf("csscolor: empty color value")
	case v == "transparent":
		return Transparent, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return parseRGBFunc(v)
	case strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla("):
		return parseHSLFunc(v)
	}

	if named, ok := colornames.Map[v]; ok {
		return Color{R: named.R, G: named.G, B: named.B, A: 1}, nil
	}
	return Color{}, fmt.Errorf("csscolor: unrecognized color %q", s)
}

// String renders the color in computed-style form.
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Over composites the color onto an opaque backdrop using source-over
// blending and returns the resulting opaque color.
func (c Color) Over(backdrop Color) Color {
	if c.A >= 1 {
		return c
	}
	blend := func(src, dst uint8) uint8 {
		v := float64(src)*c.A + float64(dst)*(1-c.A)
		return clamp8(v)
	}
	return Color{
		R: blend(c.R, backdrop.R),
		G: blend(c.G, backdrop.G),
		B: blend(c.B, backdrop.B),
		A: 1,
	}
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful color to an opaque Color.
func FromColorful(cc colorful.Color) Color {
	clamped := cc.Clamped()
	return Color{
		R: clamp8(clamped.R * 255),
		G: clamp8(clamped.G * 255),
		B: clamp8(clamped.B * 255),
		A: 1,
	}
}

func parseHex(hex string) (Color, error) {
	expand := func(nibble byte) string {
		return string([]byte{nibble, nibble})
	}

	switch len(hex) {
	case 3:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2])
	case 4:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + expand(hex[3])
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("csscolor: invalid hex length %d", len(hex))
	}

	channel := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("csscolor: invalid hex digit in %q", hex)
		}
		return uint8(v), nil
	}

	r, err := channel(0)
	if err != nil {
		return Color{}, err
	}
	g, err := channel(2)
	if err != nil {
		return Color{}, err
	}
	b, err := channel(4)
	if err != nil {
		return Color{}, err
	}

	a := 1.0
	if len(hex) == 8 {
		av, err := channel(6)
		if err != nil {
			return Color{}, err
		}
		a = float64(av) / 255
	}

	return Color{R: r, G: g, B: b, A: a}, nil
}

func parseRGBFunc(v string) (Color, error) {
	args, alpha, err := splitFuncArgs(v)
	if err != nil {
		return Color{}, err
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("csscolor: rgb() expects 3 channels, got %d", len(args))
	}

	var ch [3]uint8
	for i, arg := range args {
		ch[i], err = parseChannel(arg)
		if err != nil {
			return Color{}, err
		}
	}

	a := 1.0
	if alpha != "" {
		a, err = parseAlpha(alpha)
		if err != nil {
			return Color{}, err
		}
	}

	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSLFunc(v string) (Color, error) {
	args, alpha, err := splitFuncArgs(v)
	if err != nil {
		return Color{}, err
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("csscolor: hsl() expects 3 components, got %d", len(args))
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("csscolor: invalid hue %q", args[0])
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	s, err := parsePercent(args[1])
	if err != nil {
		return Color{}, err
	}
	l, err := parsePercent(args[2])
	if err != nil {
		return Color{}, err
	}

	a := 1.0
	if alpha != "" {
		a, err = parseAlpha(alpha)
		if err != nil {
			return Color{}, err
		}
	}

	c := FromColorful(colorful.Hsl(h, s, l))
	c.A = a
	return c, nil
}

// splitFuncArgs strips the function wrapper from "name(a, b, c)" or
// "name(a b c / alpha)" and returns the component list plus the alpha
// component, if any. In legacy comma syntax a fourth argument is the alpha.
func splitFuncArgs(v string) (args []string, alpha string, err error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, "", fmt.Errorf("csscolor: malformed function %q", v)
	}
	inner := strings.TrimSpace(v[open+1 : len(v)-1])

	if before, after, found := strings.Cut(inner, "/"); found {
		inner = strings.TrimSpace(before)
		alpha = strings.TrimSpace(after)
	}

	if strings.Contains(inner, ",") {
		for _, part := range strings.Split(inner, ",") {
			args = append(args, strings.TrimSpace(part))
		}
	} else {
		args = strings.Fields(inner)
	}

	if alpha == "" && len(args) == 4 {
		alpha = args[3]
		args = args[:3]
	}

	return args, alpha, nil
}

func parseChannel(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		p, err := parsePercent(s)
		if err != nil {
			return 0, err
		}
		return clamp8(p * 255), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("csscolor: invalid channel %q", s)
	}
	return clamp8(f), nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("csscolor: invalid alpha %q", s)
	}
	return math.Min(1, math.Max(0, f)), nil
}

func parsePercent(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("csscolor: expected percentage, got %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("csscolor: invalid percentage %q", s)
	}
	return math.Min(1, math.Max(0, f/100)), nil
}

func formatAlpha(a float64) string {
	rounded := math.Round(a*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func clamp8(v float64) uint8 {
	r := math.Round(v)
	if r <= 0 {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return uint8(r)
}
