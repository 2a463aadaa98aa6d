// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "termfolio"

var ErrNoTabs = errors.New("config: tabs must contain at least one non-empty label")

// Config is the user facing configuration of Termfolio.
type Config struct {
	Tabs       []string    `mapstructure:"tabs" yaml:"tabs"`
	InitialTab string      `mapstructure:"initial_tab" yaml:"initial_tab"`
	Language   string      `mapstructure:"language" yaml:"language"`
	Backend    string      `mapstructure:"backend" yaml:"backend"`
	Theme      ThemeConfig `mapstructure:"theme" yaml:"theme"`
	Log        LogConfig   `mapstructure:"log" yaml:"log"`
}

type ThemeConfig struct {
	Background string `mapstructure:"background" yaml:"background"`
	Accent     string `mapstructure:"accent" yaml:"accent"`
	Neutral    string `mapstructure:"neutral" yaml:"neutral"`
}

type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultTabs are the sections of the portfolio.
var DefaultTabs = []string{"ABOUT ME", "CONTRIBUTIONS", "TECH BLOG", "BOOKS REVIEW", "SOCIAL"}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"tabs":             append([]string(nil), DefaultTabs...),
		"initial_tab":      "",
		"language":         "en",
		"backend":          "bubbletea",
		"theme.background": "#073642",
		"theme.accent":     "#b58900",
		"theme.neutral":    "#ffffff",
		"log.file":         "",
		"log.level":        "info",
	}
}

// Default returns a Config holding the defaults, without reading any file.
func Default() Config {
	return Config{
		Tabs:     append([]string(nil), DefaultTabs...),
		Language: "en",
		Backend:  "bubbletea",
		Theme: ThemeConfig{
			Background: "#073642",
			Accent:     "#b58900",
			Neutral:    "#ffffff",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Normalize trims tab labels, drops empty ones and checks at least one is left.
func (c *Config) Normalize() error {
	tabs := c.Tabs[:0]
	for _, tab := range c.Tabs {
		if tab = strings.TrimSpace(tab); tab != "" {
			tabs = append(tabs, tab)
		}
	}
	c.Tabs = tabs
	if len(c.Tabs) == 0 {
		return ErrNoTabs
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Termfolio")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig layers defaults, the config file, TERMFOLIO_* environment
// variables and the flags of cmd, in increasing precedence. A missing config
// file is not an error; an explicitly given one must exist.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// 3. An explicit --config path replaces the search paths.
	if additional_config_file_path != nil {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}
