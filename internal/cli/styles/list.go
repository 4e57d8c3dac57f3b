package styles

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// RecordItem represents a persisted audit run in the history list.
type RecordItem struct {
	ID            int64
	Document      string
	Level         string
	Targets       int
	Passed        int
	Failed        int
	Indeterminate int
	WorstRatio    float64
	CreatedAt     time.Time
}

// FilterValue implements list.Item.
func (i RecordItem) FilterValue() string {
	return i.Document
}

// RecordDelegate renders audit records with theme styling.
type RecordDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d RecordDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d RecordDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d RecordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single audit record.
func (d RecordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(RecordItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const (
		maxDocLength   = 60
		ellipsisLength = 3
	)

	doc := ri.Document
	if len(doc) > maxDocLength {
		doc = doc[:maxDocLength-ellipsisLength] + "..."
	}

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(doc),
	)

	var outcome string
	if ri.Failed > 0 {
		outcome = t.ErrorStyle.Render(fmt.Sprintf("%d/%d failing", ri.Failed, ri.Targets))
	} else if ri.Indeterminate > 0 {
		outcome = t.WarningStyle.Render(fmt.Sprintf("%d passed, %d indeterminate", ri.Passed, ri.Indeterminate))
	} else {
		outcome = t.SuccessStyle.Render(fmt.Sprintf("all %d passed", ri.Targets))
	}

	meta := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.MutedBadge(strings.ToUpper(ri.Level)),
		" ",
		t.TimeBadge(ri.CreatedAt),
	)

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 3),
		outcome,
		" ",
		meta,
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewRecordList creates a themed list for audit records.
func NewRecordList(theme *Theme, items []RecordItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, RecordDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

// FindingItem represents one finding in the report browser.
type FindingItem struct {
	Finding entity.Finding
}

// FilterValue implements list.Item.
func (i FindingItem) FilterValue() string {
	return i.Finding.Path + " " + i.Finding.Target
}

// FindingDelegate renders findings with theme styling.
type FindingDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d FindingDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d FindingDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d FindingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single finding.
func (d FindingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(FindingItem)
	if !ok {
		return
	}

	f := fi.Finding
	t := d.Theme
	isSelected := index == m.Index()
	const (
		maxPathLength  = 56
		ellipsisLength = 3
	)

	path := f.Path
	if len(path) > maxPathLength {
		path = "..." + path[len(path)-(maxPathLength-ellipsisLength):]
	}

	cursor := cursorEmpty
	pathStyle := t.ListItemTitle
	if isSelected {
		cursor = cursorSelected
		pathStyle = pathStyle.Foreground(t.Accent).Bold(true)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		pathStyle.Render(path),
		" ",
		t.VerdictBadge(f.Verdict),
	)

	colors := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Swatch(string(f.TextColor)),
		t.Subtle.Render(" on "),
		t.Swatch(string(f.BackgroundColor)),
	)

	var measure string
	if f.Verdict == entity.VerdictIndeterminate {
		measure = t.Subtle.Render("not measurable")
	} else {
		measure = t.RatioBadge(f.Ratio, f.Required)
	}

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 3),
		colors,
		" ",
		measure,
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewFindingList creates a themed list for report findings.
func NewFindingList(theme *Theme, findings []entity.Finding, width, height int) list.Model {
	listItems := make([]list.Item, len(findings))
	for i, f := range findings {
		listItems[i] = FindingItem{Finding: f}
	}

	l := list.New(listItems, FindingDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
