package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// PaletteRenderer renders the configured color settings as swatch rows.
type PaletteRenderer struct {
	theme *Theme
}

// NewPaletteRenderer creates a new palette renderer with the given theme.
func NewPaletteRenderer(theme *Theme) *PaletteRenderer {
	return &PaletteRenderer{theme: theme}
}

// Render renders all palette colors and gradient presets.
func (r *PaletteRenderer) Render(settings entity.ColorSettings) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		iconStyle.Render(IconPalette),
		t.Title.Render(fmt.Sprintf("Colors (%d)", len(settings.Colors)))))
	for _, c := range settings.Colors {
		b.WriteString(r.renderColorRow(c))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		iconStyle.Render(IconPalette),
		t.Title.Render(fmt.Sprintf("Gradients (%d)", len(settings.Gradients)))))
	for _, g := range settings.Gradients {
		b.WriteString(r.renderGradientRow(g))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", r.renderToggle("Custom colors", settings.CustomColors)))
	b.WriteString(fmt.Sprintf("  %s\n", r.renderToggle("Custom gradients", settings.CustomGradients)))

	return b.String()
}

func (r *PaletteRenderer) renderColorRow(c entity.ColorOption) string {
	t := r.theme
	const nameWidth = 22

	name := c.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		"  ",
		t.Swatch(c.Color),
		" ",
		t.Normal.Width(nameWidth).Render(name),
		t.Subtle.Render(c.Slug),
		"  ",
		t.ListItemDesc.Render(c.Color),
	)
}

func (r *PaletteRenderer) renderGradientRow(g entity.GradientOption) string {
	t := r.theme
	const nameWidth = 22

	name := g.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	// Terminals cannot paint a CSS gradient; show swatches for the stops.
	stops := gradientStops(g.Gradient)
	blocks := make([]string, 0, len(stops))
	for _, stop := range stops {
		blocks = append(blocks, t.Swatch(stop))
	}
	preview := strings.Join(blocks, "")
	if preview == "" {
		preview = t.Subtle.Render("····")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		"  ",
		preview,
		" ",
		t.Normal.Width(nameWidth).Render(name),
		t.Subtle.Render(g.Slug),
	)
}

func (r *PaletteRenderer) renderToggle(label string, enabled bool) string {
	t := r.theme
	if enabled {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			t.SuccessStyle.Render(IconCheck), " ", t.Normal.Render(label), t.Subtle.Render(" enabled"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		t.Subtle.Render(IconX), " ", t.Normal.Render(label), t.Subtle.Render(" disabled"))
}

// gradientStops pulls the color stops out of a CSS gradient string. Good
// enough for previews; anything unrecognized is simply skipped.
func gradientStops(gradient string) []string {
	open := strings.IndexByte(gradient, '(')
	if open < 0 || !strings.HasSuffix(gradient, ")") {
		return nil
	}

	var stops []string
	for _, part := range splitTopLevel(gradient[open+1 : len(gradient)-1]) {
		part = strings.TrimSpace(part)
		// Drop the trailing position ("rgb(6,147,227) 0%" -> "rgb(6,147,227)").
		if idx := strings.LastIndexByte(part, ' '); idx > 0 && strings.ContainsAny(part[idx:], "%") {
			part = part[:idx]
		}
		if SwatchHex(part) != "" {
			stops = append(stops, part)
		}
	}
	return stops
}

// splitTopLevel splits on commas that are not nested inside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
