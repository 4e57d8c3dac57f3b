package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli"
	"github.com/legible-dev/legible/internal/cli/model"
	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/logging"
)

var (
	auditJSON        bool
	auditLevel       string
	auditPolicy      string
	auditRules       string
	auditNoSave      bool
	auditSuggest     bool
	auditInteractive bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <file>...",
	Short: "Audit documents for color contrast",
	Long: `Audit one or more documents for WCAG color contrast.

Every text-bearing node is evaluated: its effective text color against the
effective background (walking ancestors while the background stays
transparent). Pass - to read a single document from stdin.

Exits 2 when any finding fails, so CI pipelines can gate on it.

Examples:
  legible audit page.html                  # Human-readable report
  legible audit --json page.html | jq .    # Machine-readable report
  legible audit --level aaa *.html         # Stricter threshold, many files
  legible audit --suggest page.html        # Include passing replacements
  cat page.html | legible audit -          # Read from stdin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output the report as JSON")
	auditCmd.Flags().StringVar(&auditLevel, "level", "", "conformance level: aa or aaa (default from config)")
	auditCmd.Flags().StringVar(&auditPolicy, "policy", "", "transparent backgrounds: skip or assume:<color> (default from config)")
	auditCmd.Flags().StringVar(&auditRules, "rules", "", "rule script run once per finding (default from config)")
	auditCmd.Flags().BoolVar(&auditNoSave, "no-save", false, "do not record the run in history")
	auditCmd.Flags().BoolVar(&auditSuggest, "suggest", false, "suggest passing replacement colors on failed findings")
	auditCmd.Flags().BoolVarP(&auditInteractive, "interactive", "i", false, "browse the findings in a TUI")
}

func runAudit(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if len(args) > 1 {
		for _, arg := range args {
			if arg == "-" {
				return fmt.Errorf("stdin (-) cannot be combined with files")
			}
		}
	}

	rules, err := app.RuleEngine(ctx, auditRules)
	if err != nil {
		return err
	}

	reports, err := app.AuditFiles(ctx, args, cli.AuditOptions{
		Level:   auditLevel,
		Policy:  auditPolicy,
		Suggest: auditSuggest || app.Config.Contrast.Suggest,
		Rules:   rules,
	})
	if err != nil {
		return err
	}

	if !auditNoSave {
		for _, report := range reports {
			if err := app.SaveReport(ctx, report); err != nil {
				// History is advisory; the report still stands.
				logging.FromContext(ctx).Warn().Err(err).Msg("failed to record audit")
			}
		}
	}

	switch {
	case auditJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			err = enc.Encode(reports[0])
		} else {
			err = enc.Encode(reports)
		}
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

	case auditInteractive:
		for _, report := range reports {
			p := tea.NewProgram(model.NewReportModel(app.Theme, report), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
		}

	default:
		renderer := styles.NewReportRenderer(app.Theme)
		for _, report := range reports {
			fmt.Println(renderer.Render(report))
		}
	}

	var failed, total int
	for _, report := range reports {
		_, f, _ := report.Counts()
		failed += f
		total += len(report.Findings)
	}
	if failed > 0 {
		return &cli.ExitError{Code: 2, Err: fmt.Errorf("%d of %d findings failed", failed, total)}
	}
	return nil
}
