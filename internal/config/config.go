// SPDX-License-Identifier: MIT

// Package config loads the multibeta runtime configuration through viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
)

// EnvPrefix prefixes every environment override (MULTIBETA_EPSILON, ...).
const EnvPrefix = "MULTIBETA"

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("config: unknown format")

// Config holds all runtime configuration for a multibeta run.
// Values are populated from .multibeta.yaml, MULTIBETA_* env vars, and CLI flags.
type Config struct {
	diffusion.Params `mapstructure:",squash" yaml:",inline"`

	Input     string        `mapstructure:"input" yaml:"input" toml:"input"`
	Output    string        `mapstructure:"output" yaml:"output" toml:"output"`
	Workers   int           `mapstructure:"workers" yaml:"workers" toml:"workers"`
	SQLite    string        `mapstructure:"sqlite" yaml:"sqlite" toml:"sqlite"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string        `mapstructure:"log_format" yaml:"log_format" toml:"log_format"`
	Debounce  time.Duration `mapstructure:"debounce" yaml:"debounce" toml:"debounce"`
}

// SetDefaults registers the built-in default of every key on v.
func SetDefaults(v *viper.Viper) {
	p := diffusion.DefaultParams()
	v.SetDefault("epsilon", p.Epsilon)
	v.SetDefault("delta", p.Delta)
	v.SetDefault("max_iter", p.MaxIter)
	v.SetDefault("tol", p.Tol)
	v.SetDefault("anchors", p.Anchors)
	v.SetDefault("clip_min", p.ClipMin)
	v.SetDefault("clip_max", p.ClipMax)
	v.SetDefault("inf", p.Inf)

	v.SetDefault("input", "data_1")
	v.SetDefault("output", "Output_test")
	v.SetDefault("workers", 0)
	v.SetDefault("sqlite", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("debounce", 500*time.Millisecond)
}

// Discover points v at its config file and environment. An explicit file must
// exist; otherwise .multibeta.yaml is searched in the working directory and the
// home directory, and its absence is not an error.
func Discover(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".multibeta")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load applies defaults to v, decodes it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the diffusion parameters and the run settings.
func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch {
	case c.Input == "":
		return fmt.Errorf("config: %w: input folder is empty", diffusion.ErrInvalidParams)
	case c.Output == "":
		return fmt.Errorf("config: %w: output root is empty", diffusion.ErrInvalidParams)
	case c.Workers < 0:
		return fmt.Errorf("config: %w: workers=%d < 0", diffusion.ErrInvalidParams, c.Workers)
	case c.Debounce < 0:
		return fmt.Errorf("config: %w: debounce=%s < 0", diffusion.ErrInvalidParams, c.Debounce)
	}

	return nil
}

// Write encodes cfg to w as "yaml" or "toml".
func Write(w io.Writer, cfg Config, format string) error {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
