// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const appDir = "uavacademy"

// Config holds runtime settings. Empty paths are filled in by Load from the
// XDG base directories.
type Config struct {
	DBPath     string `env:"UAVACADEMY_DB"`
	LogPath    string `env:"UAVACADEMY_LOG"`
	LogLevel   string `env:"UAVACADEMY_LOG_LEVEL" envDefault:"info"`
	ContentDir string `env:"UAVACADEMY_CONTENT"`
}

// Load reads the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolve(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	lookup := func(k string) string { return environ[k] }
	if err := cfg.resolve(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve(getenv func(string) string) error {
	if c.DBPath == "" {
		dir, err := baseDir(getenv, "XDG_DATA_HOME", ".local", "share")
		if err != nil {
			return err
		}
		c.DBPath = filepath.Join(dir, appDir, appDir+".db")
	}
	if c.LogPath == "" {
		dir, err := baseDir(getenv, "XDG_STATE_HOME", ".local", "state")
		if err != nil {
			return err
		}
		c.LogPath = filepath.Join(dir, appDir, appDir+".log")
	}
	return nil
}

// baseDir returns $xdgVar, or ~/<fallback...> when it is unset.
func baseDir(getenv func(string) string, xdgVar string, fallback ...string) (string, error) {
	if d := getenv(xdgVar); d != "" {
		return d, nil
	}
	home := getenv("HOME")
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		home = h
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}
