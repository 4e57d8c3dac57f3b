package config

// Default configuration constants
const (
	// Contrast defaults
	defaultLevel             = "aa"
	defaultTransparentPolicy = "skip"

	// WCAG large text starts at 18pt, or 14pt bold, in CSS pixels at 96dpi.
	defaultLargeTextPx     = 24.0
	defaultLargeTextBoldPx = 18.66

	// History defaults
	defaultMaxHistoryEntries = 500 // audit runs kept by purge

	// Watch defaults
	defaultDebounceMs = 400 // editors emit several events per save

	// Server defaults
	defaultServerAddr   = "127.0.0.1:8484"
	defaultMaxBodyBytes = 2 << 20 // 2MB of markup is a very large document
)

// DefaultConfig returns the default configuration values for legible.
func DefaultConfig() *Config {
	return &Config{
		Contrast: ContrastConfig{
			Level:             defaultLevel,
			TransparentPolicy: defaultTransparentPolicy,
			LargeTextPx:       defaultLargeTextPx,
			LargeTextBoldPx:   defaultLargeTextBoldPx,
			Suggest:           false,
		},
		Palette: PaletteConfig{
			Colors:          DefaultPaletteColors(),
			Gradients:       DefaultPaletteGradients(),
			CustomColors:    true,
			CustomGradients: true,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in config.Load()
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			MaxEntries: defaultMaxHistoryEntries,
			AutoSave:   true,
		},
		Rules: RulesConfig{
			Path: "",
		},
		Watch: WatchConfig{
			DebounceMs: defaultDebounceMs,
		},
		Server: ServerConfig{
			Addr:           defaultServerAddr,
			AllowedOrigins: []string{},
			MaxBodyBytes:   defaultMaxBodyBytes,
		},
	}
}

// DefaultPaletteColors returns the stock named color options, the palette
// most editors ship out of the box.
func DefaultPaletteColors() []PaletteColor {
	return []PaletteColor{
		{Name: "Black", Slug: "black", Color: "#000000"},
		{Name: "Cyan bluish gray", Slug: "cyan-bluish-gray", Color: "#abb8c3"},
		{Name: "White", Slug: "white", Color: "#ffffff"},
		{Name: "Pale pink", Slug: "pale-pink", Color: "#f78da7"},
		{Name: "Vivid red", Slug: "vivid-red", Color: "#cf2e2e"},
		{Name: "Luminous vivid orange", Slug: "luminous-vivid-orange", Color: "#ff6900"},
		{Name: "Luminous vivid amber", Slug: "luminous-vivid-amber", Color: "#fcb900"},
		{Name: "Light green cyan", Slug: "light-green-cyan", Color: "#7bdcb5"},
		{Name: "Vivid green cyan", Slug: "vivid-green-cyan", Color: "#00d084"},
		{Name: "Pale cyan blue", Slug: "pale-cyan-blue", Color: "#8ed1fc"},
		{Name: "Vivid cyan blue", Slug: "vivid-cyan-blue", Color: "#0693e3"},
		{Name: "Vivid purple", Slug: "vivid-purple", Color: "#9b51e0"},
	}
}

// DefaultPaletteGradients returns the stock gradient presets.
func DefaultPaletteGradients() []PaletteGradient {
	return []PaletteGradient{
		{
			Name:     "Vivid cyan blue to vivid purple",
			Slug:     "vivid-cyan-blue-to-vivid-purple",
			Gradient: "linear-gradient(135deg,rgba(6,147,227,1) 0%,rgb(155,81,224) 100%)",
		},
		{
			Name:     "Light green cyan to vivid green cyan",
			Slug:     "light-green-cyan-to-vivid-green-cyan",
			Gradient: "linear-gradient(135deg,rgb(122,220,180) 0%,rgb(0,208,130) 100%)",
		},
		{
			Name:     "Luminous vivid amber to luminous vivid orange",
			Slug:     "luminous-vivid-amber-to-luminous-vivid-orange",
			Gradient: "linear-gradient(135deg,rgba(252,185,0,1) 0%,rgba(255,105,0,1) 100%)",
		},
	}
}
