// ABOUTME: BMI tool preferences: output format, color and default gender.
// ABOUTME: JSON file under XDG config home, overridden by BMI_* env vars.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/harperreed/bmi/internal/models"
	"github.com/harperreed/bmi/internal/render"
)

// Config stores bmi tool preferences.
type Config struct {
	// Format is the default output format: text, json, yaml or markdown.
	Format string `json:"format,omitempty" env:"BMI_FORMAT"`

	// NoColor disables ANSI colors in text output.
	NoColor bool `json:"no_color,omitempty" env:"BMI_NO_COLOR"`

	// DefaultGender is used when --gender is not given.
	DefaultGender string `json:"default_gender,omitempty" env:"BMI_DEFAULT_GENDER"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty" env:"BMI_VERBOSE"`
}

// Keys lists the settable config keys.
var Keys = []string{"format", "no_color", "default_gender", "verbose"}

// GetFormat returns the configured output format, defaulting to text.
func (c *Config) GetFormat() render.Format {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatText
	}
	return f
}

// GetDefaultGender returns the configured default gender, or "" if unset.
func (c *Config) GetDefaultGender() models.Gender {
	g, err := models.ParseGender(c.DefaultGender)
	if err != nil {
		return ""
	}
	return g
}

// Set assigns a config key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "format":
		f, err := render.ParseFormat(value)
		if err != nil {
			return err
		}
		c.Format = string(f)
	case "no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("no_color must be true or false: %w", err)
		}
		c.NoColor = b
	case "default_gender":
		if value == "" {
			c.DefaultGender = ""
			return nil
		}
		g, err := models.ParseGender(value)
		if err != nil {
			return err
		}
		c.DefaultGender = string(g)
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false: %w", err)
		}
		c.Verbose = b
	default:
		return fmt.Errorf("unknown config key: %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Values returns the config as sorted key/value pairs for display.
func (c *Config) Values() [][2]string {
	vals := map[string]string{
		"format":         string(c.GetFormat()),
		"no_color":       strconv.FormatBool(c.NoColor),
		"default_gender": c.DefaultGender,
		"verbose":        strconv.FormatBool(c.Verbose),
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, vals[k]})
	}
	return out
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

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bmi", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFile reads config from disk without environment overrides.
func LoadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
