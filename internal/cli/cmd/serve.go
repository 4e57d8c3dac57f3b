package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/infrastructure/config"
	"github.com/legible-dev/legible/internal/logging"
	"github.com/legible-dev/legible/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP audit service",
	Long: `Run the audit service: POST /v1/audit takes an HTML body and returns
a JSON report, /healthz reports liveness, /metrics exposes Prometheus
metrics. Stop with Ctrl-C; in-flight requests get five seconds to finish.

Examples:
  legible serve
  legible serve --addr :9090
  curl -s --data-binary @page.html localhost:8080/v1/audit | jq .findings`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := app.RuleEngine(ctx, "")
	if err != nil {
		return err
	}

	cfg := app.Config.Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	srv := server.New(cfg, app.Config.Contrast, rules)

	// Config edits take effect without a restart; the listen address stays
	// fixed for the lifetime of the process.
	log := logging.FromContext(ctx)
	app.ConfigManager().OnConfigChange(func(next *config.Config) {
		srv.SetContrastConfig(next.Contrast)
		log.Info().Str("level", next.Contrast.Level).Msg("config reloaded, contrast defaults updated")
	})
	if err := app.ConfigManager().Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable, changes need a restart")
	}

	return srv.Run(ctx)
}
