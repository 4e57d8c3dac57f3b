package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// VerdictBadge renders a verdict as a colored badge.
func (t *Theme) VerdictBadge(v entity.Verdict) string {
	var bg lipgloss.Color
	switch v {
	case entity.VerdictPass:
		bg = t.Success
	case entity.VerdictFail:
		bg = t.Error
	default:
		bg = t.Warning
	}

	style := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(bg).
		Padding(0, 1).
		Bold(true)
	return style.Render(strings.ToUpper(string(v)))
}

// RatioBadge renders a measured ratio against its requirement.
func (t *Theme) RatioBadge(ratio, required float64) string {
	text := fmt.Sprintf("%.2f:1 (needs %.1f:1)", ratio, required)
	if ratio >= required {
		return t.BadgeMuted.Render(text)
	}
	style := lipgloss.NewStyle().
		Foreground(t.Error).
		Background(t.SurfaceVariant).
		Padding(0, 1)
	return style.Render(text)
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	now := time.Now()
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / (24 * 7))
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / (24 * 30))
		if months == 1 {
			return "1mo ago"
		}
		return fmt.Sprintf("%dmo ago", months)
	default:
		years := int(diff.Hours() / (24 * 365))
		if years == 1 {
			return "1y ago"
		}
		return fmt.Sprintf("%dy ago", years)
	}
}

func formatCount(n int) string {
	if n > 999 {
		return "999+"
	}
	return fmt.Sprintf("%d", n)
}
