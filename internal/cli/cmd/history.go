package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli/model"
	"github.com/legible-dev/legible/internal/cli/styles"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage recorded audits",
	Long:  `Interactive audit history browser with tabs, search, and purge.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show (for --json)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// JSON output mode (non-interactive)
	if historyJSON {
		return runHistoryJSON()
	}

	// Interactive TUI mode
	return runHistoryTUI()
}

// runHistoryTUI runs the interactive history browser.
func runHistoryTUI() error {
	app := GetApp()
	ctx := app.Ctx()

	historyUC, err := app.History(ctx)
	if err != nil {
		return err
	}

	m := model.NewHistoryModel(ctx, app.Theme, historyUC, app.Config.History.MaxEntries)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runHistoryJSON outputs history as JSON.
func runHistoryJSON() error {
	app := GetApp()
	ctx := app.Ctx()

	historyUC, err := app.History(ctx)
	if err != nil {
		return err
	}

	m := model.NewHistoryListModel(ctx, historyUC, historyMax)

	// Run briefly to load data
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run model: %w", err)
	}

	// Extract results
	listModel, ok := finalModel.(model.HistoryListModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if listModel.Error() != nil {
		return listModel.Error()
	}

	// Output as JSON
	records := listModel.Records()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

var (
	purgeKeep int
	purgeYes  bool
)

// purgeCmd trims the audit history.
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete old audit runs",
	Long:  `Delete recorded audit runs beyond the retention count, newest kept.`,
	RunE:  runPurge,
}

func init() {
	historyCmd.AddCommand(purgeCmd)

	purgeCmd.Flags().IntVar(&purgeKeep, "keep", -1, "runs to keep (default from config)")
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "skip the confirmation prompt")
}

func runPurge(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	keep := purgeKeep
	if keep < 0 {
		keep = app.Config.History.MaxEntries
	}

	if !purgeYes {
		confirmed, err := runConfirm(app.Theme, fmt.Sprintf("Purge all but the newest %d runs?", keep))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	historyUC, err := app.History(ctx)
	if err != nil {
		return err
	}

	removed, err := historyUC.Purge(ctx, keep)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderPurged(removed, keep))
	return nil
}

// confirmProgram adapts a confirm modal to a standalone program.
type confirmProgram struct {
	inner styles.ConfirmModel
}

func (m confirmProgram) Init() tea.Cmd { return nil }

func (m confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	inner, cmd := m.inner.Update(msg)
	m.inner = inner
	if m.inner.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmProgram) View() string { return m.inner.View() }

func runConfirm(theme *styles.Theme, message string) (bool, error) {
	p := tea.NewProgram(confirmProgram{inner: styles.NewConfirm(theme, message)})
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm: %w", err)
	}
	m, ok := finalModel.(confirmProgram)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	return m.inner.Done() && m.inner.Result(), nil
}
