package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Capability tags accepted in [[auth.keys]].
const (
	CapabilityAll    = "access_all"
	CapabilitySingle = "access_single"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Client ClientConfig `toml:"client"`
	Auth   AuthConfig   `toml:"auth"`
	Songs  []SongConfig `toml:"songs"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	Debug           bool     `toml:"debug"`
	AllowBypass     bool     `toml:"allow_bypass"`
	ProtectedPrefix string   `toml:"protected_prefix"`
	CORSOrigins     []string `toml:"cors_origins"`
	ReadTimeout     int      `toml:"read_timeout"`     // seconds
	WriteTimeout    int      `toml:"write_timeout"`    // seconds
	ShutdownTimeout int      `toml:"shutdown_timeout"` // seconds
}

// ClientConfig contains settings for the CLI and TUI when talking to a running server.
type ClientConfig struct {
	BaseURL   string  `toml:"base_url"`
	APIKey    string  `toml:"api_key"`
	Workers   int     `toml:"workers"`
	RateLimit float64 `toml:"rate_limit"` // requests per second
}

// AuthConfig holds the static API key table.
type AuthConfig struct {
	Keys []KeyConfig `toml:"keys"`
}

// KeyConfig maps one API key to its capability tag.
type KeyConfig struct {
	Key        string `toml:"key"`
	Capability string `toml:"capability"`
}

// SongConfig is one seeded catalog entry.
type SongConfig struct {
	ID           int    `toml:"id"`
	Title        string `toml:"title"`
	Artist       string `toml:"artist"`
	SongURL      string `toml:"song_url"`
	ThumbnailURL string `toml:"thumbnail_url"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Timeout converts a seconds field to a [time.Duration].
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// KeyFor returns the first configured key holding capability, or "" if none does.
func (a AuthConfig) KeyFor(capability string) string {
	for _, k := range a.Keys {
		if k.Capability == capability {
			return k.Key
		}
	}
	return ""
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads variables from the given .env files into the process environment.
//
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values from SONGAPI_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv("SONGAPI_HOST")); v != "" {
		c.Server.Host = v
	}
	if v := strings.TrimSpace(getenv("SONGAPI_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SONGAPI_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.Port = port
	}
	if v := strings.TrimSpace(getenv("SONGAPI_DEBUG")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SONGAPI_DEBUG=%q", ErrInvalidConfig, v)
		}
		c.Server.Debug = b
	}
	if v := strings.TrimSpace(getenv("SONGAPI_ALLOW_BYPASS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SONGAPI_ALLOW_BYPASS=%q", ErrInvalidConfig, v)
		}
		c.Server.AllowBypass = b
	}
	if v := strings.TrimSpace(getenv("SONGAPI_ALL_KEY")); v != "" {
		c.Auth.setKey(CapabilityAll, v)
	}
	if v := strings.TrimSpace(getenv("SONGAPI_SINGLE_KEY")); v != "" {
		c.Auth.setKey(CapabilitySingle, v)
	}
	if v := strings.TrimSpace(getenv("SONGAPI_BASE_URL")); v != "" {
		c.Client.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(getenv("SONGAPI_API_KEY")); v != "" {
		c.Client.APIKey = v
	}

	return nil
}

// setKey replaces the key of every entry with capability, appending one if none exists.
func (a *AuthConfig) setKey(capability, key string) {
	found := false
	for i := range a.Keys {
		if a.Keys[i].Capability == capability {
			a.Keys[i].Key = key
			found = true
		}
	}
	if !found {
		a.Keys = append(a.Keys, KeyConfig{Key: key, Capability: capability})
	}
}

// Validate checks server settings and the key table.
//
// Song invariants are enforced when the catalog is built.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.ProtectedPrefix == "" || !strings.HasPrefix(c.Server.ProtectedPrefix, "/") {
		return fmt.Errorf("%w: protected_prefix must start with /", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Auth.Keys))
	for i, k := range c.Auth.Keys {
		if strings.TrimSpace(k.Key) == "" {
			return fmt.Errorf("%w: auth.keys[%d] has an empty key", ErrInvalidConfig, i)
		}
		if k.Capability != CapabilityAll && k.Capability != CapabilitySingle {
			return fmt.Errorf("%w: auth.keys[%d] has unknown capability %q", ErrInvalidConfig, i, k.Capability)
		}
		if seen[k.Key] {
			return fmt.Errorf("%w: auth.keys[%d] duplicates an earlier key", ErrInvalidConfig, i)
		}
		seen[k.Key] = true
	}

	if c.Client.RateLimit < 0 {
		return fmt.Errorf("%w: client.rate_limit must not be negative", ErrInvalidConfig)
	}

	return nil
}
