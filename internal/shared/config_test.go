package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 8000 {
			t.Errorf("expected server port 8000, got %d", config.Server.Port)
		}

		if config.Server.AllowBypass {
			t.Error("expected allow_bypass to default to false")
		}

		if config.Server.ProtectedPrefix != "/api/v1" {
			t.Errorf("expected protected prefix /api/v1, got %s", config.Server.ProtectedPrefix)
		}

		if len(config.Songs) != 2 {
			t.Fatalf("expected 2 seeded songs, got %d", len(config.Songs))
		}

		if config.Songs[0].Title != "Heat Waves" {
			t.Errorf("expected first song Heat Waves, got %s", config.Songs[0].Title)
		}

		if config.Auth.KeyFor(CapabilityAll) == "" || config.Auth.KeyFor(CapabilitySingle) == "" {
			t.Error("expected a key for each capability")
		}

		if err := config.Validate(); err != nil {
			t.Errorf("expected default config to validate, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Server.Addr() != defaultConfig.Server.Addr() {
			t.Errorf("created config address doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 9090
allow_bypass = true
protected_prefix = "/api/v2"
cors_origins = ["https://example.com"]

[[auth.keys]]
key = "all-key"
capability = "access_all"

[[songs]]
id = 7
title = "Song Seven"
artist = "Someone"
song_url = "https://example.com/7.mp3"
thumbnail_url = "https://example.com/7.png"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Addr() != "0.0.0.0:9090" {
			t.Errorf("expected address 0.0.0.0:9090, got %s", config.Server.Addr())
		}

		if !config.Server.AllowBypass {
			t.Error("expected allow_bypass to be true")
		}

		if len(config.Server.CORSOrigins) != 1 || config.Server.CORSOrigins[0] != "https://example.com" {
			t.Errorf("unexpected cors origins %v", config.Server.CORSOrigins)
		}

		if config.Auth.KeyFor(CapabilityAll) != "all-key" {
			t.Errorf("expected all-key, got %s", config.Auth.KeyFor(CapabilityAll))
		}

		if config.Songs[0].ID != 7 {
			t.Errorf("expected song id 7, got %d", config.Songs[0].ID)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadConfig invalid toml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server\nport ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tc := []struct {
		name   string
		mutate func(c *Config)
	}{
		{
			name:   "unknown capability",
			mutate: func(c *Config) { c.Auth.Keys[0].Capability = "access_everything" },
		},
		{
			name:   "empty key",
			mutate: func(c *Config) { c.Auth.Keys[0].Key = "  " },
		},
		{
			name:   "duplicate key",
			mutate: func(c *Config) { c.Auth.Keys[1].Key = c.Auth.Keys[0].Key },
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 70000 },
		},
		{
			name:   "relative prefix",
			mutate: func(c *Config) { c.Server.ProtectedPrefix = "api" },
		},
		{
			name:   "negative rate limit",
			mutate: func(c *Config) { c.Client.RateLimit = -1 },
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	t.Run("overrides values", func(t *testing.T) {
		config := DefaultConfig()
		err := config.ApplyEnv(env(map[string]string{
			"SONGAPI_HOST":         "0.0.0.0",
			"SONGAPI_PORT":         "9000",
			"SONGAPI_DEBUG":        "true",
			"SONGAPI_ALLOW_BYPASS": "1",
			"SONGAPI_ALL_KEY":      "new-all",
			"SONGAPI_SINGLE_KEY":   "new-single",
			"SONGAPI_BASE_URL":     "http://songs.local/",
			"SONGAPI_API_KEY":      "client-key",
		}))
		if err != nil {
			t.Fatalf("ApplyEnv() error = %v", err)
		}

		if config.Server.Addr() != "0.0.0.0:9000" {
			t.Errorf("expected 0.0.0.0:9000, got %s", config.Server.Addr())
		}
		if !config.Server.Debug || !config.Server.AllowBypass {
			t.Error("expected debug and allow_bypass to be enabled")
		}
		if config.Auth.KeyFor(CapabilityAll) != "new-all" {
			t.Errorf("expected new-all, got %s", config.Auth.KeyFor(CapabilityAll))
		}
		if config.Auth.KeyFor(CapabilitySingle) != "new-single" {
			t.Errorf("expected new-single, got %s", config.Auth.KeyFor(CapabilitySingle))
		}
		if len(config.Auth.Keys) != 2 {
			t.Errorf("expected keys to be replaced in place, got %d keys", len(config.Auth.Keys))
		}
		if config.Client.BaseURL != "http://songs.local" {
			t.Errorf("expected trailing slash trimmed, got %s", config.Client.BaseURL)
		}
		if config.Client.APIKey != "client-key" {
			t.Errorf("expected client-key, got %s", config.Client.APIKey)
		}
	})

	t.Run("appends missing capability", func(t *testing.T) {
		config := &Config{}
		if err := config.ApplyEnv(env(map[string]string{"SONGAPI_SINGLE_KEY": "only"})); err != nil {
			t.Fatalf("ApplyEnv() error = %v", err)
		}
		if len(config.Auth.Keys) != 1 || config.Auth.Keys[0].Capability != CapabilitySingle {
			t.Errorf("expected one access_single key, got %v", config.Auth.Keys)
		}
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, kv := range [][2]string{
			{"SONGAPI_PORT", "eighty"},
			{"SONGAPI_DEBUG", "maybe"},
			{"SONGAPI_ALLOW_BYPASS", "sure"},
		} {
			config := DefaultConfig()
			err := config.ApplyEnv(env(map[string]string{kv[0]: kv[1]}))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("%s=%s: expected ErrInvalidConfig, got %v", kv[0], kv[1], err)
			}
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SONGAPI_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("SONGAPI_TEST_DOTENV", "")
	os.Unsetenv("SONGAPI_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	if got := os.Getenv("SONGAPI_TEST_DOTENV"); got != "loaded" {
		t.Errorf("expected loaded, got %q", got)
	}
}
