// Package config handles global configuration for orcidlink.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/libsys/orcidlink/internal/mais"
)

// GlobalConfig represents configuration stored in
// ~/.config/orcidlink/config.yml.
type GlobalConfig struct {
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "orcidlink"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Environment variables overriding the config file. A .env file loaded
// at the command layer feeds these too.
const (
	EnvClientID     = "MAIS_CLIENT_ID"
	EnvClientSecret = "MAIS_CLIENT_SECRET"
	EnvBaseURL      = "MAIS_BASE_URL"
)

// ErrMissingCredentials indicates the client id, secret or base URL is
// not configured anywhere.
var ErrMissingCredentials = errors.New("mais client credentials are not configured (set client-id, client-secret and base-url)")

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/orcidlink/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// SaveGlobalConfig writes the global configuration file and refreshes
// the cache. The file holds a client secret, so it is not group or
// world readable.
func SaveGlobalConfig(cfg *GlobalConfig) error {
	path := GlobalConfigPath()
	if path == "" {
		return errors.New("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	globalConfigCache = cfg
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ResolveMais merges environment overrides over the global config and
// validates that everything a MaIS client needs is present.
func ResolveMais() (mais.Config, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return mais.Config{}, err
	}

	out := mais.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		BaseURL:      cfg.BaseURL,
	}
	if v := os.Getenv(EnvClientID); v != "" {
		out.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		out.ClientSecret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		out.BaseURL = v
	}

	if out.ClientID == "" || out.ClientSecret == "" || out.BaseURL == "" {
		return mais.Config{}, ErrMissingCredentials
	}
	return out, nil
}
