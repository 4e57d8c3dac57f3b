// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/build"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/config"
	"github.com/legible-dev/legible/internal/infrastructure/persistence/sqlite"
	"github.com/legible-dev/legible/internal/infrastructure/scripting"
	"github.com/legible-dev/legible/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	mgr *config.Manager
	db  *sqlite.LazyDB

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, &ExitError{Code: 4, Err: fmt.Errorf("init config: %w", err)}
	}
	if err := mgr.Load(); err != nil {
		return nil, &ExitError{Code: 4, Err: fmt.Errorf("load config: %w", err)}
	}
	cfg := mgr.Get()

	theme := styles.NewTheme()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("LEGIBLE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	// The database opens lazily on first history access, so audits with
	// auto-save off never touch disk.
	db := sqlite.NewLazyDB(cfg.Database.Path)

	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("cli initialized")

	return &App{
		Config: cfg,
		Theme:  theme,
		mgr:    mgr,
		db:     db,
		ctx:    ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the loaded config file, or "" when running
// on defaults.
func (a *App) ConfigFile() string {
	return a.mgr.GetConfigFile()
}

// ConfigManager exposes the manager for long-running commands that want
// reloads on config file changes.
func (a *App) ConfigManager() *config.Manager {
	return a.mgr
}

// History returns the audit history use case, opening the database on first
// use.
func (a *App) History(ctx context.Context) (*usecase.ManageHistoryUseCase, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return usecase.NewManageHistoryUseCase(sqlite.NewAuditRepository(db)), nil
}

// RuleEngine loads the rule script named by path, falling back to the
// configured one. Returns nil when no script is configured.
func (a *App) RuleEngine(ctx context.Context, path string) (port.RuleEngine, error) {
	if path == "" {
		path = a.Config.Rules.Path
	}
	if path == "" {
		return nil, nil
	}
	engine, err := scripting.NewEngine(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return engine, nil
}

// Checker builds a contrast checker from config. Non-empty level and policy
// override the configured values.
func (a *App) Checker(level, policy string) (contrast.Checker, error) {
	if level == "" {
		level = a.Config.Contrast.Level
	}
	lvl, err := contrast.ParseLevel(level)
	if err != nil {
		return contrast.Checker{}, err
	}

	if policy == "" {
		policy = a.Config.Contrast.TransparentPolicy
	}
	pol, err := contrast.ParseTransparentPolicy(policy)
	if err != nil {
		return contrast.Checker{}, err
	}

	return contrast.Checker{
		Level:           lvl,
		Policy:          pol,
		LargeTextPx:     a.Config.Contrast.LargeTextPx,
		LargeTextBoldPx: a.Config.Contrast.LargeTextBoldPx,
	}, nil
}

// Settings returns the palette settings resolved from config.
func (a *App) Settings(ctx context.Context) (entity.ColorSettings, error) {
	uc := usecase.NewPrepareColorSettingsUseCase(config.NewSettingsProvider(a.mgr))
	out, err := uc.Execute(ctx)
	if err != nil {
		return entity.ColorSettings{}, err
	}
	return out.Settings, nil
}
