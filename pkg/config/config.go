// Package config reads hrow settings from a `.hrow` file and HROW_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved configuration of one run.
type Config struct {
	// Path is the snapshot directory.
	Path string
	Log  Log
	Seed Seed
}

// Log selects the logger.
type Log struct {
	Level  string
	Format string
	// File receives log output. Empty keeps the logger quiet in the UI.
	File string
}

// Seed sizes the demo data.
type Seed struct {
	Workers int
	Finance int
}

// BasePath implements store.Config.
func (c *Config) BasePath() string {
	return c.Path
}

// Load walks the config search path, applies HROW_* overrides and expands
// the home directory in path. A missing config file is fine; a malformed
// one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.hrow.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("seed.workers", 20)
	v.SetDefault("seed.finance", 5)

	v.SetConfigName(".hrow") // .yaml is implicit
	v.SetEnvPrefix("HROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("HROW_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}

	return &Config{
		Path: path,
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		Seed: Seed{
			Workers: v.GetInt("seed.workers"),
			Finance: v.GetInt("seed.finance"),
		},
	}, nil
}
