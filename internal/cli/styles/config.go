package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !exists {
		status = fmt.Sprintf("\n  %s no config file yet, showing built-in defaults (run `legible config init`)",
			iconStyle.Render(IconInfo))
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderInitSuccess renders the message after writing a fresh config file.
func (r *ConfigRenderer) RenderInitSuccess(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Wrote default config to %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
	)
}

// RenderSchemaWritten renders the message after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Wrote JSON schema to %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
	)
}

// RenderPurged renders the result of a history purge.
func (r *ConfigRenderer) RenderPurged(removed int64, kept int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Removed %s old audit runs, kept the newest %s\n",
		iconStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d", removed)),
		r.theme.Highlight.Render(fmt.Sprintf("%d", kept)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s %s\n",
		iconStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
