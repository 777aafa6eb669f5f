package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update updates the configuration.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldConfig := m.config
	m.config = config

	if oldConfig != nil {
		slog.Debug("Configuration updated",
			"client_id_changed", oldConfig.SoundCloud.ClientID != config.SoundCloud.ClientID,
			"redirect_uri_changed", oldConfig.SoundCloud.RedirectURI != config.SoundCloud.RedirectURI,
			"telegram_enabled_changed", oldConfig.Telegram.Enabled != config.Telegram.Enabled,
		)
	}
}

// PollInterval returns the playlist polling interval.
func (m *Manager) PollInterval() time.Duration {
	return time.Duration(m.Get().SoundCloud.PollIntervalSeconds) * time.Second
}

// Save writes the current configuration to the specified file path.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create config file", "path", path, "error", err)
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.config); err != nil {
		slog.Error("failed to encode config", "path", path, "error", err)
		return err
	}

	slog.Info("Configuration saved successfully", "path", path)
	return nil
}

// redactedCfg gets a redacted copy of the Config
func (m *Manager) redactedCfg() Config {
	var cfgCpy = *m.Get()
	if cfgCpy.SoundCloud.ClientSecret != "" {
		cfgCpy.SoundCloud.ClientSecret = "<redacted>"
	}
	if cfgCpy.Telegram.Token != "" {
		cfgCpy.Telegram.Token = "<redacted>"
	}
	return cfgCpy
}

// GetJSON returns the current configuration as a JSON string. Locking is
// left to redactedCfg; taking the lock here too would deadlock against a
// concurrent Update.
func (m *Manager) GetJSON() string {
	jsonBytes, err := json.Marshal(m.redactedCfg())
	if err != nil {
		slog.Error("failed to marshal config to JSON", "error", err)
		return err.Error()
	}
	return string(jsonBytes)
}
