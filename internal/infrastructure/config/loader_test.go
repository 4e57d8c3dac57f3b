package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestDirs points the XDG directories at a temp dir so tests never touch
// the real user configuration.
func setTestDirs(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	return tmp
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "aa", mgr.viper.GetString("contrast.level"))
	assert.Equal(t, "skip", mgr.viper.GetString("contrast.transparent_policy"))
	assert.True(t, mgr.viper.GetBool("palette.custom_colors"))
	assert.Equal(t, 400, mgr.viper.GetInt("watch.debounce_ms"))
	assert.Equal(t, "127.0.0.1:8484", mgr.viper.GetString("server.addr"))

	// No default for database.path; Load() derives it from XDG dirs.
	assert.Empty(t, mgr.viper.GetString("database.path"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contrast.Level = " AAA "
	cfg.Contrast.TransparentPolicy = ""
	cfg.Logging.Format = "text"
	cfg.Watch.DebounceMs = 0
	cfg.Server.MaxBodyBytes = 0

	normalizeConfig(cfg)

	assert.Equal(t, "aaa", cfg.Contrast.Level)
	assert.Equal(t, "skip", cfg.Contrast.TransparentPolicy)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, defaultDebounceMs, cfg.Watch.DebounceMs)
	assert.Equal(t, int64(defaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
}

func TestNormalizeConfig_UnknownLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	normalizeConfig(cfg)

	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestEnsureDatabasePath(t *testing.T) {
	tmp := setTestDirs(t)

	cfg := DefaultConfig()
	require.NoError(t, ensureDatabasePath(cfg))
	assert.Equal(t, filepath.Join(tmp, "data", "legible", "legible.db"), cfg.Database.Path)

	cfg.Database.Path = "/custom/audits.db"
	require.NoError(t, ensureDatabasePath(cfg))
	assert.Equal(t, "/custom/audits.db", cfg.Database.Path)
}

func TestManagerLoad_Defaults(t *testing.T) {
	tmp := setTestDirs(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "aa", cfg.Contrast.Level)
	assert.Equal(t, "skip", cfg.Contrast.TransparentPolicy)
	assert.Len(t, cfg.Palette.Colors, 12)
	assert.Equal(t, filepath.Join(tmp, "data", "legible", "legible.db"), cfg.Database.Path)

	// XDG directories get created as part of Load.
	assert.DirExists(t, filepath.Join(tmp, "config", "legible"))
	assert.DirExists(t, filepath.Join(tmp, "data", "legible"))
}

func TestManagerLoad_ReadsConfigFile(t *testing.T) {
	tmp := setTestDirs(t)

	configDir := filepath.Join(tmp, "config", "legible")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := "[contrast]\nlevel = \"aaa\"\ntransparent_policy = \"assume:white\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "aaa", cfg.Contrast.Level)
	assert.Equal(t, "assume:white", cfg.Contrast.TransparentPolicy)
	// Everything not in the file keeps its default.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 500, cfg.History.MaxEntries)
}

func TestManagerLoad_EnvOverride(t *testing.T) {
	setTestDirs(t)
	t.Setenv("LEGIBLE_CONTRAST_LEVEL", "aaa")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "aaa", mgr.Get().Contrast.Level)
}

func TestManagerLoad_RejectsInvalidConfig(t *testing.T) {
	tmp := setTestDirs(t)

	configDir := filepath.Join(tmp, "config", "legible")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := "[contrast]\nlevel = \"aa+\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contrast.level")
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	setTestDirs(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	first := mgr.Get()
	first.Contrast.Level = "aaa"

	assert.Equal(t, "aa", mgr.Get().Contrast.Level)
}

func TestManagerSave_WritesFileAndUpdatesConfig(t *testing.T) {
	tmp := setTestDirs(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Contrast.Level = "aaa"
	require.NoError(t, mgr.Save(cfg))

	assert.Equal(t, "aaa", mgr.Get().Contrast.Level)
	assert.FileExists(t, filepath.Join(tmp, "config", "legible", "config.toml"))
}

func TestManagerSave_RejectsInvalidConfig(t *testing.T) {
	setTestDirs(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Logging.Level = "verbose"

	err = mgr.Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}
