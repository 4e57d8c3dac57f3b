package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli"
	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/watch"
)

var (
	watchLevel   string
	watchPolicy  string
	watchRules   string
	watchSuggest bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-audit a document on every save",
	Long: `Watch a document and re-audit it whenever it changes.

Rapid editor save bursts are debounced, and a save that changes no finding
prints nothing. Stop with Ctrl-C.

Examples:
  legible watch page.html
  legible watch --level aaa page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchLevel, "level", "", "conformance level: aa or aaa (default from config)")
	watchCmd.Flags().StringVar(&watchPolicy, "policy", "", "transparent backgrounds: skip or assume:<color> (default from config)")
	watchCmd.Flags().StringVar(&watchRules, "rules", "", "rule script run once per finding (default from config)")
	watchCmd.Flags().BoolVar(&watchSuggest, "suggest", false, "suggest passing replacement colors on failed findings")
}

func runWatch(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := app.RuleEngine(ctx, watchRules)
	if err != nil {
		return err
	}
	opts := cli.AuditOptions{
		Level:   watchLevel,
		Policy:  watchPolicy,
		Suggest: watchSuggest || app.Config.Contrast.Suggest,
		Rules:   rules,
	}

	// Fail fast on a bad level or policy flag before settling into the
	// watch loop; the service audits once on start.
	if _, err := app.Checker(watchLevel, watchPolicy); err != nil {
		return err
	}

	renderer := styles.NewReportRenderer(app.Theme)
	svc := watch.NewService(
		args[0],
		app.Config.Watch.DebounceMs,
		func(ctx context.Context, path string) (*entity.Report, error) {
			return app.AuditFile(ctx, path, opts)
		},
		func(report *entity.Report) {
			fmt.Println(renderer.Render(report))
		},
	)

	fmt.Println(app.Theme.Subtle.Render("Watching " + args[0] + " (Ctrl-C to stop)"))
	return svc.Run(ctx)
}
