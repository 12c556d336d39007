// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes psu's configuration. It uses Viper for
// file, environment and flag parsing and goccy/go-yaml to write the file.
package config // import "github.com/psu-tools/psu/internal/config"

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName  = "psu"
	fileName = appName + ".yaml"
)

// Config is the application configuration.
type Config struct {
	// Path is the directory holding the data file.
	Path      string          `mapstructure:"path" yaml:"path"`
	Language  string          `mapstructure:"language" yaml:"language"`
	Debug     bool            `mapstructure:"debug" yaml:"debug"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
}

// ClipboardConfig configures the clipboard exporter.
type ClipboardConfig struct {
	// OSC52 enables the terminal escape fallback when no system clipboard
	// is available.
	OSC52 bool `mapstructure:"osc52" yaml:"osc52"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"path":            "~/",
		"language":        "en",
		"debug":           false,
		"clipboard.osc52": true,
	}
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Path:      "~/",
		Language:  "en",
		Clipboard: ClipboardConfig{OSC52: true},
	}
}

// Dir returns the user configuration directory of psu.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// LoadConfig layers defaults, the config file, PSU_ environment variables and
// the flags of cmd, in increasing precedence. explicitPath, when set, names
// the config file to read instead of searching for psu.yaml. A missing file
// is reported as viper.ConfigFileNotFoundError together with the decoded
// defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, readErr
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, readErr
}

// WriteConfigFile writes c to the user config path and returns that path.
func WriteConfigFile[T any](c *T) (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// ResolveDataDir expands a leading ~ in path and makes it absolute. An empty
// path resolves to the home directory.
func ResolveDataDir(path string) (string, error) {
	if path == "" {
		path = "~"
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand data path %q: %w", path, err)
	}
	return filepath.Abs(expanded)
}
