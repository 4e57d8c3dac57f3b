package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("LEGIBLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Most variables come through AutomaticEnv with the LEGIBLE_ prefix
	// (e.g. LEGIBLE_CONTRAST_LEVEL, LEGIBLE_DATABASE_PATH). The explicit
	// bindings keep the log variables aligned with the names the logging
	// package reads before config is available.
	if err := v.BindEnv("logging.level", "LEGIBLE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LEGIBLE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LEGIBLE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LEGIBLE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// First run: defaults only. The file appears once the user
			// runs `legible config init`.
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Contrast.Level = strings.ToLower(strings.TrimSpace(config.Contrast.Level))
	if config.Contrast.Level == "" {
		config.Contrast.Level = defaultLevel
	}

	config.Contrast.TransparentPolicy = strings.ToLower(strings.TrimSpace(config.Contrast.TransparentPolicy))
	if config.Contrast.TransparentPolicy == "" {
		config.Contrast.TransparentPolicy = defaultTransparentPolicy
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", "text", "console":
		config.Logging.Format = "console"
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	if config.Watch.DebounceMs == 0 {
		config.Watch.DebounceMs = defaultDebounceMs
	}
	if config.Server.MaxBodyBytes == 0 {
		config.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates and writes the provided configuration to disk.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return err
		}
	}

	// The watcher fires on our own write; the in-memory config is already
	// the one we are writing.
	if m.watching {
		m.skipNextReload = true
	}

	if err := WriteConfig(cfg, configFile); err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setContrastDefaults(defaults)
	m.setPaletteDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setHistoryDefaults(defaults)
	m.setRulesDefaults(defaults)
	m.setWatchDefaults(defaults)
	m.setServerDefaults(defaults)
}

func (m *Manager) setContrastDefaults(defaults *Config) {
	m.viper.SetDefault("contrast.level", defaults.Contrast.Level)
	m.viper.SetDefault("contrast.transparent_policy", defaults.Contrast.TransparentPolicy)
	m.viper.SetDefault("contrast.large_text_px", defaults.Contrast.LargeTextPx)
	m.viper.SetDefault("contrast.large_text_bold_px", defaults.Contrast.LargeTextBoldPx)
	m.viper.SetDefault("contrast.suggest", defaults.Contrast.Suggest)
}

func (m *Manager) setPaletteDefaults(defaults *Config) {
	m.viper.SetDefault("palette.colors", defaults.Palette.Colors)
	m.viper.SetDefault("palette.gradients", defaults.Palette.Gradients)
	m.viper.SetDefault("palette.custom_colors", defaults.Palette.CustomColors)
	m.viper.SetDefault("palette.custom_gradients", defaults.Palette.CustomGradients)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setHistoryDefaults(defaults *Config) {
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	m.viper.SetDefault("history.auto_save", defaults.History.AutoSave)
}

func (m *Manager) setRulesDefaults(defaults *Config) {
	m.viper.SetDefault("rules.path", defaults.Rules.Path)
}

func (m *Manager) setWatchDefaults(defaults *Config) {
	m.viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.addr", defaults.Server.Addr)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	m.viper.SetDefault("server.max_body_bytes", defaults.Server.MaxBodyBytes)
}
