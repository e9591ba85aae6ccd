// SPDX-License-Identifier: MIT

// Package config loads run configuration from defaults, an optional file
// and RELOCATE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/relocate/model"
)

// EnvPrefix prefixes every environment override, e.g. RELOCATE_MODEL_DELTA.
const EnvPrefix = "RELOCATE"

// Config holds application configuration.
type Config struct {
	Model model.Params `mapstructure:"model"`
	Sweep SweepConfig  `mapstructure:"sweep"`
	Store StoreConfig  `mapstructure:"store"`
	Log   LogConfig    `mapstructure:"log"`
}

// SweepConfig holds solver execution settings.
type SweepConfig struct {
	Workers int `mapstructure:"workers"`
}

// StoreConfig holds sqlite settings. An empty Path disables persistence.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds slog handler settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// Load reads configuration. path may be empty; otherwise its extension
// selects the format (yaml, toml, json).
func Load(path string) (Config, error) {
	v := viper.New()

	p := model.DefaultParams()
	v.SetDefault("model.delta", p.Delta)
	v.SetDefault("model.num_r", p.NumR)
	v.SetDefault("model.min_r", p.MinR)
	v.SetDefault("model.max_r", p.MaxR)
	v.SetDefault("model.num_share", p.NumShare)
	v.SetDefault("model.min_share", p.MinShare)
	v.SetDefault("model.max_share", p.MaxShare)
	v.SetDefault("sweep.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Sweep.Workers < 1 {
		c.Sweep.Workers = 1
	}

	return c, nil
}
