// Package config loads settings for the quotes app using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kerbaras/quotes/pkg/sources"
)

// AppName names the XDG subdirectories.
const AppName = "quotes"

// EnvPrefix is stripped from environment variables; QUOTES_LOG_LEVEL maps to log.level.
const EnvPrefix = "QUOTES_"

type Config struct {
	Source  SourceConfig  `koanf:"source"  validate:"required"`
	Storage StorageConfig `koanf:"storage" validate:"required"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
}

type SourceConfig struct {
	Endpoint  string        `koanf:"endpoint"   validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout"    validate:"min=0"`
	RateLimit float64       `koanf:"rate_limit" validate:"min=0"`
}

type StorageConfig struct {
	Favourites string `koanf:"favourites" validate:"required"`
	History    string `koanf:"history"    validate:"required"`
}

type LogConfig struct {
	Level      string `koanf:"level"       validate:"required,oneof=debug info warn error"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
}

// DataDir is where favourites and history live by default.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultConfigFile is the config file read when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func defaults() map[string]any {
	return map[string]any{
		"source.endpoint":   sources.DefaultEndpoint,
		"source.timeout":    "0s",
		"source.rate_limit": 2.0,

		"storage.favourites": filepath.Join(DataDir(), "favourites.json"),
		"storage.history":    filepath.Join(DataDir(), "history.db"),

		"log.level":       "info",
		"log.file":        filepath.Join(StateDir(), "quotes.log"),
		"log.max_size":    10,
		"log.max_backups": 3,
	}
}

// Load reads configuration with the following precedence (highest first):
//  1. Environment variables (QUOTES_ prefix)
//  2. The YAML file at path, or DefaultConfigFile when path is empty
//  3. Default values
//
// An explicit path that does not exist is an error; a missing default file
// is not.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with one more layer on top of env vars, keyed
// like the file ("log.level"). Overrides are validated with everything else.
func LoadWithOverrides(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultConfigFile()); err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKey(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps QUOTES_SOURCE_RATE_LIMIT to source.rate_limit: the first
// underscore separates the section, the rest belong to the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
