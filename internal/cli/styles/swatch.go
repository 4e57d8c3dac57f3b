package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/pkg/csscolor"
)

// SwatchHex converts a CSS color value into the #rrggbb form lipgloss
// understands. Unparseable and transparent values yield "".
func SwatchHex(value string) string {
	c, err := csscolor.Parse(value)
	if err != nil || c.IsTransparent() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Swatch renders a small colored block for a CSS color value. Colors the
// terminal cannot show (transparent, unparseable) render as a muted
// placeholder instead.
func (t *Theme) Swatch(value string) string {
	hex := SwatchHex(value)
	if hex == "" {
		return t.Subtle.Render("····")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

// SwatchLabel renders a swatch followed by the color value.
func (t *Theme) SwatchLabel(value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Swatch(value),
		" ",
		t.Normal.Render(value),
	)
}
