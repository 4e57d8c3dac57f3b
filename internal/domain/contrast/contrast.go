// Package contrast implements WCAG 2.x relative luminance and contrast
// ratio math over resolved colors, and decides verdicts for detection
// results.
package contrast

import (
	"fmt"
	"math"
	"strings"

	"github.com/legible-dev/legible/pkg/csscolor"
)

// Level selects which WCAG conformance thresholds apply.
type Level string

const (
	// LevelAA requires 4.5:1 for normal text and 3:1 for large text.
	LevelAA Level = "aa"

	// LevelAAA requires 7:1 for normal text and 4.5:1 for large text.
	LevelAAA Level = "aaa"
)

// ParseLevel parses a conformance level from its config string.
// Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	default:
		return "", fmt.Errorf("contrast: unknown level %q (want aa or aaa)", s)
	}
}

// WCAG large text starts at 18pt, or 14pt bold, which maps to CSS pixels
// at 96dpi as below.
const (
	largeTextPx     = 24.0
	largeTextBoldPx = 18.66
)

// TextStyle describes the rendered text the thresholds depend on.
type TextStyle struct {
	SizePx float64
	Bold   bool
}

// Large reports whether the style qualifies as WCAG large text.
func (t TextStyle) Large() bool {
	if t.SizePx >= largeTextPx {
		return true
	}
	return t.Bold && t.SizePx >= largeTextBoldPx
}

// Luminance returns the WCAG relative luminance of a color in [0, 1].
// Alpha is ignored; composite before measuring.
func Luminance(c csscolor.Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(ch float64) float64 {
	if ch <= 0.04045 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between two colors, from 1 to 21.
// Argument order does not matter.
func Ratio(a, b csscolor.Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MinimumRatio returns the ratio required for a level and text size.
func MinimumRatio(level Level, large bool) float64 {
	if level == LevelAAA {
		if large {
			return 4.5
		}
		return 7.0
	}
	if large {
		return 3.0
	}
	return 4.5
}
