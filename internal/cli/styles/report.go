package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// ReportRenderer renders audit reports for plain terminal output.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// Render renders a full report: header, one block per finding, summary.
func (r *ReportRenderer) Render(report *entity.Report) string {
	t := r.theme

	var b strings.Builder
	b.WriteString(r.renderHeader(report))
	b.WriteString("\n")

	if len(report.Findings) == 0 {
		b.WriteString(t.Subtle.Render("  no text-bearing nodes found"))
		b.WriteString("\n")
		return b.String()
	}

	for _, f := range report.Findings {
		b.WriteString(r.renderFindingLine(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.renderSummary(report))
	b.WriteString("\n")
	return b.String()
}

func (r *ReportRenderer) renderHeader(report *entity.Report) string {
	t := r.theme
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Title.Render(report.Document),
		" ",
		t.AccentBadge(strings.ToUpper(report.Level)),
	) + "\n"
}

func (r *ReportRenderer) renderFindingLine(f entity.Finding) string {
	t := r.theme

	colors := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Swatch(string(f.TextColor)),
		t.Subtle.Render(" on "),
		t.Swatch(string(f.BackgroundColor)),
	)

	var measure string
	switch {
	case f.Verdict == entity.VerdictIndeterminate:
		measure = t.Subtle.Render("not measurable")
	case f.Assumed:
		measure = t.RatioBadge(f.Ratio, f.Required) + t.Subtle.Render(" assumed backdrop")
	default:
		measure = t.RatioBadge(f.Ratio, f.Required)
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Center,
		"  ",
		t.VerdictBadge(f.Verdict),
		" ",
		t.Normal.Render(f.Path),
		"  ",
		colors,
		"  ",
		measure,
	)

	if f.Suggestion != "" {
		line += "\n" + lipgloss.JoinHorizontal(
			lipgloss.Center,
			strings.Repeat(" ", 9),
			t.Subtle.Render("try "),
			t.Swatch(string(f.Suggestion)),
			" ",
			t.Highlight.Render(string(f.Suggestion)),
		)
	}

	if f.Note != "" {
		noteStyle := t.Subtle
		switch f.NoteSeverity {
		case "warning":
			noteStyle = t.WarningStyle
		case "error":
			noteStyle = t.ErrorStyle
		}
		line += "\n" + strings.Repeat(" ", 9) + noteStyle.Render(f.Note)
	}

	return line
}

func (r *ReportRenderer) renderSummary(report *entity.Report) string {
	t := r.theme
	passed, failed, indeterminate := report.Counts()

	parts := []string{
		t.SuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
	}
	if failed > 0 {
		parts = append(parts, t.ErrorStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	if indeterminate > 0 {
		parts = append(parts, t.WarningStyle.Render(fmt.Sprintf("%d indeterminate", indeterminate)))
	}
	summary := strings.Join(parts, t.Subtle.Render(" • "))

	if worst := report.WorstRatio(); worst > 0 && len(report.Findings) > 0 {
		summary += t.Subtle.Render(fmt.Sprintf("  worst %.2f:1", worst))
	}
	summary += t.Subtle.Render(fmt.Sprintf("  in %s", report.Duration.Round(time.Millisecond)))

	return "  " + summary
}

// RenderFindingDetail renders one finding as a boxed detail view.
func (r *ReportRenderer) RenderFindingDetail(f entity.Finding) string {
	t := r.theme

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("node        "), t.Normal.Render(f.Path)),
	}
	if f.Target != "" {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("target      "), t.Normal.Render(f.Target)))
	}
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("text        "), t.SwatchLabel(string(f.TextColor))),
		lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("background  "), t.SwatchLabel(string(f.BackgroundColor))),
	)

	if f.Verdict == entity.VerdictIndeterminate {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("contrast    "), t.WarningStyle.Render("not measurable")))
	} else {
		ratio := fmt.Sprintf("%.2f:1, needs %.1f:1", f.Ratio, f.Required)
		if f.Assumed {
			ratio += " (assumed backdrop)"
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("contrast    "), t.Normal.Render(ratio)))
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("verdict     "), t.VerdictBadge(f.Verdict)))

	if f.Suggestion != "" {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("suggestion  "), t.SwatchLabel(string(f.Suggestion))))
	}
	if f.Note != "" {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("note        "), t.Normal.Render(f.Note)))
	}

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderDetection renders an inspect result: the resolved color pair.
func (r *ReportRenderer) RenderDetection(det *entity.DetectionResult) string {
	t := r.theme
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("text        "), t.SwatchLabel(det.TextColor.String())),
		lipgloss.JoinHorizontal(lipgloss.Center, t.Subtle.Render("background  "), t.SwatchLabel(det.BackgroundColor.String())),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
