package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/composition/internal/levels"
)

// Config holds user preferences for a play session.
type Config struct {
	// Level preselects a difficulty. Empty shows the level picker.
	Level string `yaml:"level"`

	// Seed makes generated questions reproducible. 0 means random.
	Seed uint64 `yaml:"seed"`

	// Plain selects the line-oriented front-end instead of the TUI.
	Plain bool `yaml:"plain"`

	// LogFile receives debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{}
}

// DefaultPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/composition/config.yaml
// 2. ~/.config/composition/config.yaml
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "composition", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path and the
// COMPOSITION_* environment variables, in increasing priority. An empty
// path uses DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile overlays the YAML document at path onto c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays values from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("COMPOSITION_LEVEL"); v != "" {
		c.Level = v
	}
	if v := getenv("COMPOSITION_SEED"); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("COMPOSITION_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("COMPOSITION_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("COMPOSITION_PLAIN: %w", err)
		}
		c.Plain = plain
	}
	if v := getenv("COMPOSITION_LOG"); v != "" {
		c.LogFile = v
	}
	return nil
}

// ResolveLevel parses the configured level. ok is false when no level is
// configured. An unknown level returns *levels.ConfigurationError.
func (c Config) ResolveLevel() (level levels.Level, ok bool, err error) {
	if strings.TrimSpace(c.Level) == "" {
		return "", false, nil
	}
	level, err = levels.Parse(c.Level)
	if err != nil {
		return "", false, err
	}
	return level, true, nil
}
