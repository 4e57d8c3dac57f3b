// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

const historyLoadLimit = 500

// HistoryModel is the Bubble Tea model for the interactive audit history
// browser.
type HistoryModel struct {
	// UI components
	tabs    styles.TabsModel
	list    list.Model
	search  textinput.Model
	help    help.Model
	keys    styles.HistoryKeyMap
	confirm *styles.ConfirmModel

	// State
	records    []*entity.AuditRecord
	filter     string
	searchMode bool
	showHelp   bool
	width      int
	height     int
	status     string
	err        error

	// Dependencies
	ctx       context.Context
	historyUC *usecase.ManageHistoryUseCase
	theme     *styles.Theme
	keep      int
}

// NewHistoryModel creates a new history browser model. keep is how many runs
// a purge from the browser retains.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, historyUC *usecase.ManageHistoryUseCase, keep int) HistoryModel {
	logging.FromContext(ctx).Debug().Msg("creating history model")

	m := HistoryModel{
		tabs:      styles.NewTabs(theme, "All", "Failing"),
		search:    styles.NewSearchInput(theme),
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultHistoryKeyMap(),
		ctx:       ctx,
		historyUC: historyUC,
		theme:     theme,
		keep:      keep,
		width:     80,
		height:    24,
	}
	m.updateList()
	return m
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.loadRecords
}

// recordsLoadedMsg is sent when audit records are loaded.
type recordsLoadedMsg struct {
	records []*entity.AuditRecord
	err     error
}

// historyPurgedMsg is sent when old records were purged.
type historyPurgedMsg struct {
	removed int64
	err     error
}

// loadRecords loads the recent audit records.
func (m HistoryModel) loadRecords() tea.Msg {
	log := logging.FromContext(m.ctx)

	records, err := m.historyUC.ListRecent(m.ctx, historyLoadLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load audit history")
		return recordsLoadedMsg{err: err}
	}

	log.Debug().Int("count", len(records)).Msg("loaded audit history")
	return recordsLoadedMsg{records: records}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleNormalKey(msg)

	case recordsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.updateList()
		return m, nil

	case historyPurgedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "purged " + strconv.FormatInt(msg.removed, 10) + " old runs"
		return m, m.loadRecords
	}

	return m, nil
}

func (m HistoryModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			cmd = m.performPurge()
		}
		m.confirm = nil
	}
	return m, cmd
}

func (m HistoryModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m HistoryModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.Purge):
		confirm := styles.NewConfirm(m.theme, "Purge all but the newest "+strconv.Itoa(m.keep)+" runs?")
		m.confirm = &confirm
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// visibleRecords returns the records for the active tab and search filter.
func (m HistoryModel) visibleRecords() []*entity.AuditRecord {
	out := make([]*entity.AuditRecord, 0, len(m.records))
	for _, r := range m.records {
		if m.tabs.Active == 1 && r.Failed == 0 {
			continue
		}
		if m.filter != "" && !strings.Contains(strings.ToLower(r.Document), strings.ToLower(m.filter)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// tabCounts returns the record count per tab, honoring the search filter.
func (m HistoryModel) tabCounts() []int {
	counts := make([]int, 2)
	for _, r := range m.records {
		if m.filter != "" && !strings.Contains(strings.ToLower(r.Document), strings.ToLower(m.filter)) {
			continue
		}
		counts[0]++
		if r.Failed > 0 {
			counts[1]++
		}
	}
	return counts
}

// updateList rebuilds the list for the current tab and filter.
func (m *HistoryModel) updateList() {
	records := m.visibleRecords()

	items := make([]styles.RecordItem, len(records))
	for i, r := range records {
		items[i] = styles.RecordItem{
			ID:            r.ID,
			Document:      r.Document,
			Level:         r.Level,
			Targets:       int(r.Targets),
			Passed:        int(r.Passed),
			Failed:        int(r.Failed),
			Indeterminate: int(r.Indeterminate),
			WorstRatio:    r.WorstRatio,
			CreatedAt:     r.CreatedAt,
		}
	}

	listHeight := m.height - 8 // Account for tabs, search, help
	if listHeight < 5 {
		listHeight = 5
	}

	m.list = styles.NewRecordList(m.theme, items, m.width, listHeight)
}

// performPurge trims history down to the configured keep count.
func (m HistoryModel) performPurge() tea.Cmd {
	return func() tea.Msg {
		removed, err := m.historyUC.Purge(m.ctx, m.keep)
		return historyPurgedMsg{removed: removed, err: err}
	}
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	header := m.tabs.ViewWithCounts(m.tabCounts())

	var searchBar string
	switch {
	case m.searchMode:
		searchBar = t.InputFocused.Render(m.search.View())
	case m.filter != "":
		searchBar = t.Subtle.Render("Filter: ") + t.Badge.Render(m.filter) + t.Subtle.Render(" (/ to change)")
	case m.status != "":
		searchBar = t.SuccessStyle.Render(m.status)
	default:
		searchBar = t.Subtle.Render("Press / to search by document, tab to switch tabs, p to purge")
	}

	listView := m.list.View()
	if m.err != nil {
		listView = t.ErrorStyle.Render("Error: " + m.err.Error())
	} else if len(m.visibleRecords()) == 0 {
		listView = t.Subtle.Render("No audit runs recorded yet.")
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
		"",
		searchBar,
		"",
		listView,
		"",
		helpView,
	)
}

// HistoryListModel is a simpler non-interactive model for JSON output.
type HistoryListModel struct {
	records []*entity.AuditRecord
	max     int
	err     error

	ctx       context.Context
	historyUC *usecase.ManageHistoryUseCase
}

// NewHistoryListModel creates a model for list output.
func NewHistoryListModel(ctx context.Context, historyUC *usecase.ManageHistoryUseCase, maxEntries int) HistoryListModel {
	return HistoryListModel{
		ctx:       ctx,
		historyUC: historyUC,
		max:       maxEntries,
	}
}

// Init implements tea.Model.
func (m HistoryListModel) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := m.historyUC.ListRecent(m.ctx, m.max)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		return recordsLoadedMsg{records: records}
	}
}

// Update implements tea.Model.
func (m HistoryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(recordsLoadedMsg); ok {
		m.records = loaded.records
		m.err = loaded.err
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m HistoryListModel) View() string {
	return "" // Output handled externally
}

// Records returns the loaded records.
func (m HistoryListModel) Records() []*entity.AuditRecord {
	return m.records
}

// Error returns any error that occurred.
func (m HistoryListModel) Error() error {
	return m.err
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*HistoryModel)(nil)
var _ tea.Model = (*HistoryListModel)(nil)
