// Package config loads songdb settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/currency"
)

// Config holds user preferences. Zero values are replaced by Default.
type Config struct {
	// StopAtBlankLine ends database loading at the first empty line.
	StopAtBlankLine bool `toml:"stop_at_blank_line"`
	// Currency is the ISO 4217 code used to display prices.
	Currency string `toml:"currency"`
	// ConfirmDiscard asks before cancelling an Add or Edit with typed input.
	ConfirmDiscard bool `toml:"confirm_discard"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogPath is the session log file. "~" is expanded.
	LogPath string `toml:"log_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Currency:       "USD",
		ConfirmDiscard: true,
		LogLevel:       "info",
		LogPath:        "~/.local/state/songdb/songdb.log",
	}
}

// DefaultPath returns ~/.config/songdb/config.toml.
func DefaultPath() (string, error) {
	return expandPath("~/.config/songdb/config.toml")
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing file yields the defaults. The returned bool reports whether a file
// was read.
func Load(path string) (Config, bool, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	if exists {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, false, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, false, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false, err
	}
	return cfg, exists, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func (c *Config) normalize() error {
	def := Default()
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if strings.TrimSpace(c.LogPath) == "" {
		c.LogPath = def.LogPath
	}
	expanded, err := expandPath(c.LogPath)
	if err != nil {
		return err
	}
	c.LogPath = expanded
	return nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("config: currency %q is not an ISO 4217 code", c.Currency)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

func expandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if p == "~" {
		return home, nil
	}
	if p[1] == '/' || p[1] == '\\' {
		return filepath.Join(home, p[2:]), nil
	}
	return p, nil
}
