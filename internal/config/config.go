// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// CalendarConfig holds calendar behavior settings.
type CalendarConfig struct {
	DefaultStart string `toml:"default_start"` // e.g., "09:00", prefilled in the create form
	DefaultEnd   string `toml:"default_end"`   // e.g., "10:00"
	WeekStart    string `toml:"week_start"`    // "sunday" or "monday"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha" or "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Calendar: CalendarConfig{
			DefaultStart: "09:00",
			DefaultEnd:   "10:00",
			WeekStart:    "sunday",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "almanac.db"
	}
	return filepath.Join(home, ".local", "share", "almanac", "almanac.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "almanac", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALMANAC_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("ALMANAC_DEFAULT_START"); v != "" {
		cfg.Calendar.DefaultStart = v
	}
	if v := os.Getenv("ALMANAC_DEFAULT_END"); v != "" {
		cfg.Calendar.DefaultEnd = v
	}
	if v := os.Getenv("ALMANAC_WEEK_START"); v != "" {
		cfg.Calendar.WeekStart = v
	}
	if v := os.Getenv("ALMANAC_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Calendar.DefaultStart, "default_start"); err != nil {
		return err
	}
	if err := validateTime(c.Calendar.DefaultEnd, "default_end"); err != nil {
		return err
	}
	if c.Calendar.DefaultStart >= c.Calendar.DefaultEnd {
		return errors.New("default_start must be before default_end")
	}

	switch strings.ToLower(c.Calendar.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("week_start must be sunday or monday, got %q", c.Calendar.WeekStart)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// WeekStartDay returns the configured first day of the week.
func (c *Config) WeekStartDay() time.Weekday {
	if strings.ToLower(c.Calendar.WeekStart) == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
