package config

const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for legible.
type Config struct {
	Contrast ContrastConfig `mapstructure:"contrast" yaml:"contrast" toml:"contrast"`
	// Palette holds the named color and gradient options handed to settings
	// renderers. Entries pass through unchanged; nothing here is validated.
	Palette  PaletteConfig  `mapstructure:"palette" yaml:"palette" toml:"palette"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history" toml:"history"`
	// Rules points at an optional user script with extra per-finding checks.
	Rules RulesConfig `mapstructure:"rules" yaml:"rules" toml:"rules"`
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" toml:"watch"`
	// Server configures the HTTP audit service.
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server"`
}

// ContrastConfig controls how detected color pairs are judged.
type ContrastConfig struct {
	// Level is the conformance level audits check against (aa or aaa).
	Level string `mapstructure:"level" yaml:"level" toml:"level"`

	// TransparentPolicy decides what to do when the ancestor walk ends on a
	// transparent background: "skip" or "assume:<color>".
	TransparentPolicy string `mapstructure:"transparent_policy" yaml:"transparent_policy" toml:"transparent_policy"`

	// LargeTextPx is the size in CSS pixels from which text counts as large.
	LargeTextPx float64 `mapstructure:"large_text_px" yaml:"large_text_px" toml:"large_text_px"`

	// LargeTextBoldPx is the large-text cutoff for bold text.
	LargeTextBoldPx float64 `mapstructure:"large_text_bold_px" yaml:"large_text_bold_px" toml:"large_text_bold_px"`

	// Suggest enables replacement-color suggestions for failing pairs.
	Suggest bool `mapstructure:"suggest" yaml:"suggest" toml:"suggest"`
}

// PaletteConfig enumerates the color choices a settings panel offers.
type PaletteConfig struct {
	Colors    []PaletteColor    `mapstructure:"colors" yaml:"colors" toml:"colors"`
	Gradients []PaletteGradient `mapstructure:"gradients" yaml:"gradients" toml:"gradients"`

	// CustomColors and CustomGradients switch free-form pickers on or off.
	CustomColors    bool `mapstructure:"custom_colors" yaml:"custom_colors" toml:"custom_colors"`
	CustomGradients bool `mapstructure:"custom_gradients" yaml:"custom_gradients" toml:"custom_gradients"`
}

// PaletteColor is one named color option.
type PaletteColor struct {
	Name  string `mapstructure:"name" yaml:"name" toml:"name"`
	Slug  string `mapstructure:"slug" yaml:"slug" toml:"slug"`
	Color string `mapstructure:"color" yaml:"color" toml:"color"`
}

// PaletteGradient is one named gradient preset.
type PaletteGradient struct {
	Name     string `mapstructure:"name" yaml:"name" toml:"name"`
	Slug     string `mapstructure:"slug" yaml:"slug" toml:"slug"`
	Gradient string `mapstructure:"gradient" yaml:"gradient" toml:"gradient"`
}

// DatabaseConfig holds audit history storage settings.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// HistoryConfig controls audit history retention.
type HistoryConfig struct {
	// MaxEntries is the retention count honored by purge.
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries" toml:"max_entries"`
	// AutoSave records every audit run unless the command opts out.
	AutoSave bool `mapstructure:"auto_save" yaml:"auto_save" toml:"auto_save"`
}

// RulesConfig configures the optional scripted rule engine.
type RulesConfig struct {
	// Path to a JavaScript file exporting check(finding). Empty disables it.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	// DebounceMs collapses bursts of file events into one re-audit.
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms"`
}

// ServerConfig configures the HTTP audit service.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr"`
	// AllowedOrigins lists origins allowed by CORS. Empty denies cross-origin.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	// MaxBodyBytes caps the accepted request body size.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
}
