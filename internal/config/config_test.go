package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/74587/srec-dash/internal/theme"
)

// setTestDirs points the XDG dirs at a temp tree so tests never touch
// the real user configuration.
func setTestDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	return base
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestLoad_Defaults(t *testing.T) {
	setTestDirs(t)
	m := newTestManager(t)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "127.0.0.1:8765", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.PreferencePollInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, theme.BasePreset, cfg.Theme.Base)
	assert.Equal(t, theme.DefaultPresetName, cfg.Theme.Preset)
	assert.Empty(t, cfg.StateFile)
}

func TestLoad_FromFile(t *testing.T) {
	setTestDirs(t)

	path, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
listen_addr = "0.0.0.0:9000"

[logging]
level = "debug"

[theme]
preset = "slate"
radius = "0.75rem"

[theme.overrides]
primary = "#336699"
`), 0o644))

	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "slate", cfg.Theme.Preset)
	assert.Equal(t, "0.75rem", cfg.Theme.Radius)
	assert.Equal(t, "#336699", cfg.Theme.Overrides["primary"])
}

func TestLoad_InvalidLevel(t *testing.T) {
	setTestDirs(t)

	path, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644))

	m := newTestManager(t)
	assert.Error(t, m.Load())
}

func TestGet_ReturnsCopy(t *testing.T) {
	setTestDirs(t)
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Server.ListenAddr = "changed"

	assert.Equal(t, "127.0.0.1:8765", m.Get().Server.ListenAddr)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setTestDirs(t)
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Theme.Preset = "emerald"
	cfg.Theme.Radius = "1rem"
	require.NoError(t, m.Save(cfg))

	// A fresh manager reads the saved file.
	m2 := newTestManager(t)
	require.NoError(t, m2.Load())
	assert.Equal(t, "emerald", m2.Get().Theme.Preset)
	assert.Equal(t, "1rem", m2.Get().Theme.Radius)

	// The saving manager serves the new config without reloading.
	assert.Equal(t, "emerald", m.Get().Theme.Preset)
}

func TestNormalizeConfig(t *testing.T) {
	c := &Config{}
	normalizeConfig(c)

	assert.Equal(t, "127.0.0.1:8765", c.Server.ListenAddr)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, theme.BasePreset, c.Theme.Base)
	assert.Equal(t, theme.DefaultPresetName, c.Theme.Preset)

	c = &Config{Theme: theme.Settings{Base: "IMPORTED"}}
	normalizeConfig(c)
	assert.Equal(t, theme.BaseImported, c.Theme.Base)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		normalizeConfig(c)
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"negative poll interval", func(c *Config) { c.Server.PreferencePollInterval = -time.Second }, true},
		{"imported without theme", func(c *Config) { c.Theme.Base = theme.BaseImported }, true},
		{"imported with theme", func(c *Config) {
			c.Theme.Base = theme.BaseImported
			c.Theme.Imported = &theme.ImportedTheme{Light: map[string]string{}, Dark: map[string]string{}}
		}, false},
		{"bad hex override", func(c *Config) { c.Theme.Overrides = map[string]string{"primary": "#12"} }, true},
		{"good hex override", func(c *Config) { c.Theme.Overrides = map[string]string{"primary": "#123456"} }, false},
		{"non-hex override passes through", func(c *Config) {
			c.Theme.Overrides = map[string]string{"radius": "0.5rem"}
		}, false},
		{"empty override key", func(c *Config) { c.Theme.Overrides = map[string]string{"": "#fff"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetXDGDirs(t *testing.T) {
	base := setTestDirs(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "config", "srec-dash"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "state", "srec-dash"), dirs.StateHome)
}

func TestGetStateFile(t *testing.T) {
	base := setTestDirs(t)

	path, err := GetStateFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "state", "srec-dash", "state.json"), path)
}
