// SPDX-License-Identifier: MPL-2.0

// Package config loads and saves mask's global configuration.
//
// The global config is separate from the project-local .mask file: it holds
// machine-wide preferences (fallback version, installations root override,
// whether switching verifies the target first) and lives in the platform's
// standard configuration directory as a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "mask"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config is mask's global configuration.
type Config struct {
	// DefaultVersion is the fallback Haxe version used when no explicit
	// flag, environment override, or .mask file provides one.
	DefaultVersion string `mapstructure:"default_version" toml:"default_version"`

	// InstallationsDir overrides the installations root (default ~/.haxe).
	InstallationsDir string `mapstructure:"installations_dir" toml:"installations_dir,omitempty"`

	// VerifySwitch makes `mask switch` validate the target installation
	// before writing the .mask file.
	VerifySwitch bool `mapstructure:"verify_switch" toml:"verify_switch"`

	// UI holds output preferences.
	UI UIConfig `mapstructure:"ui" toml:"ui"`
}

// UIConfig holds output preferences.
type UIConfig struct {
	// Verbose enables debug output by default (same as --verbose).
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
	// Quiet suppresses non-error output by default (same as --quiet).
	Quiet bool `mapstructure:"quiet" toml:"quiet"`
}

// DefaultConfig returns the built-in defaults. The fallback version mirrors
// the identifier the toolchain currently ships as its stable release.
func DefaultConfig() *Config {
	return &Config{
		DefaultVersion: "4.3.7",
		VerifySwitch:   true,
	}
}

// ConfigDir returns the mask configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the full path of the global config file.
func ConfigFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the global configuration. A missing config file is not an
// error: the defaults apply. Explicit paths (from --config) are honored
// exclusively and must exist.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("default_version", defaults.DefaultVersion)
	v.SetDefault("installations_dir", defaults.InstallationsDir)
	v.SetDefault("verify_switch", defaults.VerifySwitch)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.quiet", defaults.UI.Quiet)

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", explicitPath, err)
		}
	} else {
		cfgPath, err := ConfigFilePath()
		if err != nil {
			return nil, err
		}
		if fileExists(cfgPath) {
			v.SetConfigFile(cfgPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
			}
		}
		// If no config file found, use defaults (no error)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the global config file as TOML,
// creating the config directory if needed.
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() error {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	return Save(DefaultConfig())
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
