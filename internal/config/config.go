// ABOUTME: Fitness configuration management with backend selection.
// ABOUTME: Handles settings, logging preferences, and the record-store factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitness/internal/charm"
	"github.com/harperreed/fitness/internal/store"
)

// Supported storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

// EnvBackend overrides the configured backend when set.
const EnvBackend = "FITNESS_BACKEND"

// Config stores fitness tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data and the log file.
	// Supports ~ expansion. Defaults to ~/.local/share/fitness.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `json:"log_level,omitempty"`

	// LogJSON switches the log file to JSON lines.
	LogJSON bool `json:"log_json,omitempty"`

	// BackendOverride comes from the --backend flag and beats the environment.
	BackendOverride string `json:"-"`

	// TimerSound rings the terminal bell when a rest timer completes.
	TimerSound *bool `json:"timer_sound,omitempty"`
}

// GetBackend returns the backend from the flag override, the environment,
// the config, or "badger", in that order.
func (c *Config) GetBackend() string {
	if c.BackendOverride != "" {
		return strings.ToLower(c.BackendOverride)
	}
	if env := strings.TrimSpace(os.Getenv(EnvBackend)); env != "" {
		return strings.ToLower(env)
	}
	if c.Backend == "" {
		return BackendBadger
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// GetTimerSound reports whether the completion bell is on (default true).
func (c *Config) GetTimerSound() bool {
	return c.TimerSound == nil || *c.TimerSound
}

// LogPath is where the rotating log file lives.
func (c *Config) LogPath() string {
	return filepath.Join(c.GetDataDir(), "fitness.log")
}

// DefaultDataDir returns the default data directory following XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitness")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend opens the raw key-value backend for the configured type.
func (c *Config) OpenBackend() (store.Backend, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case BackendBadger:
		return store.OpenBadger(filepath.Join(dataDir, "badger"))
	case BackendSQLite:
		return store.OpenSQLite(filepath.Join(dataDir, "fitness.db"))
	case BackendCharm:
		return charm.Open(charm.DefaultDBName)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenStore opens the record store over the configured backend.
func (c *Config) OpenStore() (*store.Store, error) {
	b, err := c.OpenBackend()
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", c.GetBackend(), err)
	}
	return store.New(b), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitness", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
