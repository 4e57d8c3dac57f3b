package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:   "aaa level",
			mutate: func(c *Config) { c.Contrast.Level = "aaa" },
		},
		{
			name:   "assume policy",
			mutate: func(c *Config) { c.Contrast.TransparentPolicy = "assume:white" },
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Contrast.Level = "aa+" },
			wantKey: "contrast.level",
		},
		{
			name:    "bad policy",
			mutate:  func(c *Config) { c.Contrast.TransparentPolicy = "guess" },
			wantKey: "contrast.transparent_policy",
		},
		{
			name:    "assume without color",
			mutate:  func(c *Config) { c.Contrast.TransparentPolicy = "assume:" },
			wantKey: "contrast.transparent_policy",
		},
		{
			name:    "negative large text cutoff",
			mutate:  func(c *Config) { c.Contrast.LargeTextPx = -1 },
			wantKey: "contrast.large_text_px",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantKey: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantKey: "logging.format",
		},
		{
			name:    "negative history entries",
			mutate:  func(c *Config) { c.History.MaxEntries = -1 },
			wantKey: "history.max_entries",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.DebounceMs = -1 },
			wantKey: "watch.debounce_ms",
		},
		{
			name:    "empty server addr",
			mutate:  func(c *Config) { c.Server.Addr = "  " },
			wantKey: "server.addr",
		},
		{
			name:    "zero max body",
			mutate:  func(c *Config) { c.Server.MaxBodyBytes = 0 },
			wantKey: "server.max_body_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Server.MaxBodyBytes = defaultMaxBodyBytes
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantKey)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Palette entries are never validated: a config with nonsense colors still
// loads, and the entries reach the picker untouched.
func TestValidateConfig_PaletteIsNotValidated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.Colors = append(cfg.Palette.Colors, PaletteColor{
		Name:  "Mystery",
		Slug:  "mystery",
		Color: "not-a-color-at-all",
	})
	cfg.Palette.Gradients = append(cfg.Palette.Gradients, PaletteGradient{
		Name:     "Broken",
		Slug:     "broken",
		Gradient: "linear-gradient(oops",
	})

	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contrast.Level = "bogus"
	cfg.Logging.Format = "xml"
	cfg.Server.Addr = ""

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contrast.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "server.addr")
}
