package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

const (
	AppName  = "steam-idler"
	FileName = "config.toml"
)

// Config holds user defaults. Command-line flags take precedence.
type Config struct {
	DefaultDuration string `toml:"default_duration,omitempty"`
	SteamDir        string `toml:"steam_dir,omitempty"`
	LibraryPath     string `toml:"library_path,omitempty"`
	LogLevel        string `toml:"log_level"`
	Spinner         bool   `toml:"spinner"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Spinner:  true,
	}
}

// Dir returns the config directory under the XDG config home.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// StateDir returns the directory for logs under the XDG state home.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Read loads the config from dir. A missing file yields the defaults.
func Read(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write stores cfg in dir, creating the directory if needed.
func Write(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(Path(dir), data, 0o600)
}

// Validate checks that default_duration parses.
func (c *Config) Validate() error {
	if c.DefaultDuration == "" {
		return nil
	}
	if _, err := duration.Parse(c.DefaultDuration); err != nil {
		return fmt.Errorf("invalid default_duration %q: %w", c.DefaultDuration, err)
	}
	return nil
}
