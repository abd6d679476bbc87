// Package config loads user preferences from ~/.projectboard/config.json,
// an optional .env file and PROJECTBOARD_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "PROJECTBOARD_"

const (
	EnvConfigDir = envPrefix + "CONFIG_DIR"
	EnvJournal   = envPrefix + "JOURNAL"
	EnvLogFile   = envPrefix + "LOG_FILE"
	EnvLogLevel  = envPrefix + "LOG_LEVEL"
	EnvFormat    = envPrefix + "FORMAT"
	EnvTUITheme  = envPrefix + "TUI_THEME"
	EnvTUIGlyphs = envPrefix + "TUI_GLYPHS"
)

type Config struct {
	// Journal is the path of the mutation journal. Empty disables it.
	Journal  string `json:"journal,omitempty"`
	LogFile  string `json:"logFile,omitempty"`
	LogLevel string `json:"logLevel,omitempty"`
	// Format is the CLI output format (json|edn).
	Format string `json:"format,omitempty"`

	TUI TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is light, dark or auto.
	Theme string `json:"theme,omitempty"`
	// Glyphs is unicode or ascii.
	Glyphs string `json:"glyphs,omitempty"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   "json",
		TUI:      TUIConfig{Theme: "auto", Glyphs: "unicode"},
	}
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.projectboard).
	if v := strings.TrimSpace(os.Getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".projectboard"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile reads config.json on top of the defaults. A missing file is not an error.
func LoadFile() (*Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func SaveFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("ignoring unreadable env file", "path", p, "err", err)
		}
	}
}

// Load resolves the effective configuration: defaults, then config.json, then
// .env and environment variables.
func Load() (*Config, error) {
	LoadDotEnv()
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any PROJECTBOARD_* variables that are set.
func ApplyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.Journal, EnvJournal)
	set(&cfg.LogFile, EnvLogFile)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.Format, EnvFormat)
	set(&cfg.TUI.Theme, EnvTUITheme)
	set(&cfg.TUI.Glyphs, EnvTUIGlyphs)
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "json", "edn":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	switch strings.ToLower(c.TUI.Theme) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("unknown tui theme: %s", c.TUI.Theme)
	}
	switch strings.ToLower(c.TUI.Glyphs) {
	case "", "unicode", "utf8", "ascii":
	default:
		return fmt.Errorf("unknown tui glyphs: %s", c.TUI.Glyphs)
	}
	return nil
}
