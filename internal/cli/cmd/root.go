// Package cmd provides Cobra CLI commands for legible.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli"
	"github.com/legible-dev/legible/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "legible",
		Short: "Audit rendered markup for WCAG color contrast",
		Long: `Legible - a color contrast detector for rendered markup.

Resolves the effective text and background color of every text-bearing
node (walking ancestors while the background stays transparent), checks
the pair against WCAG AA/AAA thresholds, and reports per-node findings.

Features:
  - Document audits with per-node verdicts, ratios and suggestions
  - Single-target inspection mirroring the in-editor detector
  - Watch mode that re-audits on save and stays quiet when nothing changed
  - HTTP service mode with Prometheus metrics
  - Audit history in SQLite with an interactive browser
  - User-extensible rule scripts (JavaScript)

Use 'legible audit <file>' for a one-shot report, or explore the
subcommands for watch, history and service operation.`,
		// Errors carry exit codes; Execute prints once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context.
			// config init and schema must run with a broken config file.
			switch cmd.Name() {
			case "help", "completion", "version", "init", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return err
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				fmt.Fprintln(os.Stderr, exit.Err)
			}
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
