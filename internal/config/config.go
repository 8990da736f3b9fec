// Package config persists named provider profiles. The file lives at
// ~/.config/omni-agent/config.json and is parsed through the jsonc dialect,
// so hand-edited configs may carry comments and trailing commas.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// ProviderConfig is one named endpoint profile.
type ProviderConfig struct {
	Name         string `json:"name"`
	BaseURL      string `json:"base_url"`
	APIKey       string `json:"api_key,omitempty"`
	Model        string `json:"model"`
	ProviderType string `json:"provider_type,omitempty"` // forced adapter type; empty means auto-detect
}

// AppConfig is the full persisted configuration.
type AppConfig struct {
	Providers       map[string]ProviderConfig `json:"providers"`
	DefaultProvider string                    `json:"default_provider,omitempty"`
}

// NewAppConfig returns an empty configuration with an initialized provider
// map.
func NewAppConfig() AppConfig {
	return AppConfig{Providers: make(map[string]ProviderConfig)}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "omni-agent", "config.json"), nil
}

// Load reads the config at path. A missing file is not an error: it yields
// an empty configuration, matching first-run behavior.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewAppConfig(), nil
	}
	if err != nil {
		return AppConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. The file
// is written as plain indented JSON; comments from a hand-edited original
// are not preserved.
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
