package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
)

// ReportModel is the Bubble Tea model for browsing a single audit report.
type ReportModel struct {
	// UI components
	tabs     styles.TabsModel
	list     list.Model
	search   textinput.Model
	help     help.Model
	keys     styles.ReportKeyMap
	renderer *styles.ReportRenderer

	// State
	report     *entity.Report
	filter     string
	searchMode bool
	showDetail bool
	showHelp   bool
	width      int
	height     int

	theme *styles.Theme
}

// NewReportModel creates a findings browser for an already computed report.
func NewReportModel(theme *styles.Theme, report *entity.Report) ReportModel {
	m := ReportModel{
		tabs:     styles.NewTabs(theme, "All", "Failing", "Indeterminate"),
		search:   styles.NewSearchInput(theme),
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultReportKeyMap(),
		renderer: styles.NewReportRenderer(theme),
		report:   report,
		theme:    theme,
		width:    80,
		height:   24,
	}
	m.updateList()
	return m
}

// Init implements tea.Model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil

	case tea.KeyMsg:
		if m.showDetail {
			return m.handleDetailKey(msg)
		}
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

func (m ReportModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.showDetail = false
		return m, nil
	}
	return m, nil
}

func (m ReportModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.search.Blur()
		m.search.SetValue(m.filter)
		return m, nil
	case "enter":
		m.searchMode = false
		m.search.Blur()
		m.filter = strings.TrimSpace(m.search.Value())
		m.updateList()
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m ReportModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.TabAll):
		m.tabs.SetActive(0)
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.TabFail):
		m.tabs.SetActive(1)
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.TabOther):
		m.tabs.SetActive(2)
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.list.SelectedItem().(styles.FindingItem); ok {
			m.showDetail = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// matchesFilter reports whether the finding matches the search filter.
func (m ReportModel) matchesFilter(f entity.Finding) bool {
	if m.filter == "" {
		return true
	}
	needle := strings.ToLower(m.filter)
	return strings.Contains(strings.ToLower(f.Path), needle) ||
		strings.Contains(strings.ToLower(f.Target), needle)
}

// matchesTab reports whether the finding belongs on the given tab.
func matchesTab(f entity.Finding, tab int) bool {
	switch tab {
	case 1:
		return f.Verdict == entity.VerdictFail
	case 2:
		return f.Verdict == entity.VerdictIndeterminate
	default:
		return true
	}
}

// visibleFindings returns the findings for the active tab and search filter.
func (m ReportModel) visibleFindings() []entity.Finding {
	out := make([]entity.Finding, 0, len(m.report.Findings))
	for _, f := range m.report.Findings {
		if !matchesTab(f, m.tabs.Active) || !m.matchesFilter(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tabCounts returns the finding count per tab, honoring the search filter.
func (m ReportModel) tabCounts() []int {
	counts := make([]int, 3)
	for _, f := range m.report.Findings {
		if !m.matchesFilter(f) {
			continue
		}
		counts[0]++
		if f.Verdict == entity.VerdictFail {
			counts[1]++
		}
		if f.Verdict == entity.VerdictIndeterminate {
			counts[2]++
		}
	}
	return counts
}

// updateList rebuilds the list for the current tab and filter.
func (m *ReportModel) updateList() {
	findings := m.visibleFindings()

	listHeight := m.height - 8 // Account for tabs, search, help
	if listHeight < 5 {
		listHeight = 5
	}

	m.list = styles.NewFindingList(m.theme, findings, m.width, listHeight)
}

// View implements tea.Model.
func (m ReportModel) View() string {
	t := m.theme

	if m.showDetail {
		if item, ok := m.list.SelectedItem().(styles.FindingItem); ok {
			detail := m.renderer.RenderFindingDetail(item.Finding)
			footer := t.Subtle.Render("esc to go back")
			return lipgloss.JoinVertical(lipgloss.Left, detail, "", footer)
		}
		m.showDetail = false
	}

	header := t.Title.Render(m.report.Document) + " " + t.AccentBadge(strings.ToUpper(m.report.Level))
	tabBar := m.tabs.ViewWithCounts(m.tabCounts())

	var searchBar string
	switch {
	case m.searchMode:
		searchBar = t.InputFocused.Render(m.search.View())
	case m.filter != "":
		searchBar = t.Subtle.Render("Filter: ") + t.Badge.Render(m.filter) + t.Subtle.Render(" (/ to change)")
	default:
		searchBar = t.Subtle.Render("Press / to search, tab to switch tabs, enter for detail")
	}

	listView := m.list.View()
	if len(m.visibleFindings()) == 0 {
		listView = t.Subtle.Render("No findings on this tab.")
	}

	var helpView string
	if m.showHelp {
		helpView = m.help.View(m.keys)
	} else {
		helpView = t.Subtle.Render("? for help • q to quit")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tabBar,
		"",
		searchBar,
		"",
		listView,
		"",
		helpView,
	)
}

var _ tea.Model = (*ReportModel)(nil)
