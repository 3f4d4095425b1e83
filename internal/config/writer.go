package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Save writes the given configuration to the config file with
// deterministic ordering, then marks the next watch reload as
// self-inflicted.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	path, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := EnsureDirectories(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	m.mu.Lock()
	m.skipNextReload = true
	m.config = cfg
	m.mu.Unlock()

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		m.mu.Lock()
		m.skipNextReload = false
		m.mu.Unlock()
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
