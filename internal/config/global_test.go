package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// withTempConfigHome points XDG_CONFIG_HOME at a temp directory and
// clears the config cache and MAIS_* environment for the test.
func withTempConfigHome(t *testing.T) string {
	t.Helper()
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvBaseURL, "")
	return tmpDir
}

func writeConfigFile(t *testing.T, dir, contents string) {
	t.Helper()
	configDir := filepath.Join(dir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	t.Run("missing file returns empty config", func(t *testing.T) {
		withTempConfigHome(t)
		cfg, err := LoadGlobalConfig()
		if err != nil {
			t.Fatalf("LoadGlobalConfig() error = %v", err)
		}
		if cfg.ClientID != "" || cfg.BaseURL != "" {
			t.Errorf("LoadGlobalConfig() = %+v, want empty config", cfg)
		}
	})

	t.Run("reads yaml values", func(t *testing.T) {
		tmpDir := withTempConfigHome(t)
		writeConfigFile(t, tmpDir, "client_id: app\nclient_secret: hunter2\nbase_url: https://mais.example.edu\n")

		cfg, err := LoadGlobalConfig()
		if err != nil {
			t.Fatalf("LoadGlobalConfig() error = %v", err)
		}
		if cfg.ClientID != "app" || cfg.ClientSecret != "hunter2" || cfg.BaseURL != "https://mais.example.edu" {
			t.Errorf("LoadGlobalConfig() = %+v", cfg)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		tmpDir := withTempConfigHome(t)
		writeConfigFile(t, tmpDir, "client_id: [\n")
		if _, err := LoadGlobalConfig(); err == nil {
			t.Error("LoadGlobalConfig() expected error for malformed yaml")
		}
	})
}

func TestSaveGlobalConfig(t *testing.T) {
	withTempConfigHome(t)

	cfg := &GlobalConfig{ClientID: "app", ClientSecret: "hunter2", BaseURL: "https://mais.example.edu"}
	if err := SaveGlobalConfig(cfg); err != nil {
		t.Fatalf("SaveGlobalConfig() error = %v", err)
	}

	ResetGlobalConfigCache()
	loaded, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() after save error = %v", err)
	}
	if loaded.ClientID != "app" || loaded.ClientSecret != "hunter2" {
		t.Errorf("round-tripped config = %+v", loaded)
	}

	info, err := os.Stat(GlobalConfigPath())
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file mode = %o, want 600 (holds a secret)", perm)
	}
}

func TestResolveMais(t *testing.T) {
	t.Run("unconfigured is an error", func(t *testing.T) {
		withTempConfigHome(t)
		if _, err := ResolveMais(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("ResolveMais() error = %v, want ErrMissingCredentials", err)
		}
	})

	t.Run("file values used", func(t *testing.T) {
		tmpDir := withTempConfigHome(t)
		writeConfigFile(t, tmpDir, "client_id: app\nclient_secret: hunter2\nbase_url: https://mais.example.edu\n")

		cfg, err := ResolveMais()
		if err != nil {
			t.Fatalf("ResolveMais() error = %v", err)
		}
		if cfg.ClientID != "app" || cfg.BaseURL != "https://mais.example.edu" {
			t.Errorf("ResolveMais() = %+v", cfg)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		tmpDir := withTempConfigHome(t)
		writeConfigFile(t, tmpDir, "client_id: app\nclient_secret: hunter2\nbase_url: https://mais.example.edu\n")
		t.Setenv(EnvClientID, "env-app")
		t.Setenv(EnvBaseURL, "https://mais-uat.example.edu")

		cfg, err := ResolveMais()
		if err != nil {
			t.Fatalf("ResolveMais() error = %v", err)
		}
		if cfg.ClientID != "env-app" {
			t.Errorf("ClientID = %q, want env override env-app", cfg.ClientID)
		}
		if cfg.BaseURL != "https://mais-uat.example.edu" {
			t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
		}
		if cfg.ClientSecret != "hunter2" {
			t.Errorf("ClientSecret = %q, want file value kept", cfg.ClientSecret)
		}
	})
}
