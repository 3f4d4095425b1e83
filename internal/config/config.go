package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/74587/srec-dash/internal/theme"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for srec-dash.
type Config struct {
	Server  ServerConfig   `mapstructure:"server" toml:"server" json:"server"`
	Logging LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Theme   theme.Settings `mapstructure:"theme" toml:"theme" json:"theme"`

	// StateFile overrides the theme state file location. Empty means
	// the XDG state dir.
	StateFile string `mapstructure:"state_file" toml:"state_file,omitempty" json:"state_file,omitempty"`
}

// ServerConfig holds the dashboard shell server configuration.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr" json:"listen_addr"`

	// PreferencePollInterval is how often the system light/dark
	// preference is re-queried.
	PreferencePollInterval time.Duration `mapstructure:"preference_poll_interval" toml:"preference_poll_interval" json:"preference_poll_interval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Manager handles loading, watching and saving the configuration.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool

	// skipNextReload suppresses the watch reload triggered by this
	// manager's own Save.
	skipNextReload bool
}

// NewManager creates a configuration manager bound to the XDG config
// file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("resolve config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(configType)
	v.SetEnvPrefix("SREC_DASH")
	v.AutomaticEnv()

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return m.unmarshalLocked()
}

// Get returns the current configuration (thread-safe copy).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads
// automatically. Reloads triggered by this manager's own Save are
// skipped.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()

		if m.skipNextReload {
			m.skipNextReload = false
			// Sync viper's view of the file we just wrote; the
			// in-memory config is already correct.
			_ = m.viper.ReadInConfig()
			m.notifyLocked()
			return
		}

		if err := m.viper.ReadInConfig(); err != nil {
			m.mu.Unlock()
			return
		}
		if err := m.unmarshalLocked(); err != nil {
			m.mu.Unlock()
			return
		}
		m.notifyLocked()
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after every reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// notifyLocked copies callbacks and config, releases the lock, then
// notifies. Must be called with mu held for write; releases it.
func (m *Manager) notifyLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// unmarshalLocked decodes and validates viper state into m.config.
// Caller must hold mu for write.
func (m *Manager) unmarshalLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("server.listen_addr", "127.0.0.1:8765")
	m.viper.SetDefault("server.preference_poll_interval", "10s")
	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.format", "console")
	m.viper.SetDefault("theme.base", string(theme.BasePreset))
	m.viper.SetDefault("theme.preset", theme.DefaultPresetName)
}

// isNotExist covers the *os.PathError viper returns for an explicitly
// set config file that does not exist yet.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
