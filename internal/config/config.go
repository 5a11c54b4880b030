// Package config loads periodix settings from defaults, an optional config
// file and PERIODIX_* environment variables.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/scene"
	"github.com/matzehuels/periodix/pkg/tween"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. PERIODIX_TRANSITION_DURATION=3s.
const EnvPrefix = "PERIODIX"

// Config holds the entire application configuration.
type Config struct {
	Dataset    DatasetConfig    `mapstructure:"dataset" yaml:"dataset"`
	Transition TransitionConfig `mapstructure:"transition" yaml:"transition"`
	Frame      FrameConfig      `mapstructure:"frame" yaml:"frame"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

// DatasetConfig selects the records to display.
type DatasetConfig struct {
	// Path of a .json, .yaml or .toml dataset. Empty means the built-in
	// periodic table.
	Path string `mapstructure:"path" yaml:"path"`
	// Count limits the scene to the first Count records. Negative means all.
	Count int `mapstructure:"count" yaml:"count"`
}

// TransitionConfig holds scene animation settings.
type TransitionConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
	Initial  string        `mapstructure:"initial" yaml:"initial"`
	Easing   string        `mapstructure:"easing" yaml:"easing"`
	// Seed makes runs reproducible. Zero picks a random seed.
	Seed    uint64  `mapstructure:"seed" yaml:"seed"`
	Scatter float64 `mapstructure:"scatter" yaml:"scatter"`
}

// FrameConfig holds frame loop settings.
type FrameConfig struct {
	TPS int `mapstructure:"tps" yaml:"tps"`
}

// Interval returns the time between two frames.
func (f FrameConfig) Interval() time.Duration {
	return time.Second / time.Duration(f.TPS)
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	Burst           int           `mapstructure:"burst" yaml:"burst"`
	MaxScenes       int           `mapstructure:"max_scenes" yaml:"max_scenes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	// -- Dataset --
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.count", -1)

	// -- Transition --
	v.SetDefault("transition.duration", "2s")
	v.SetDefault("transition.initial", layout.NameTable)
	v.SetDefault("transition.easing", "exponential-in-out")
	v.SetDefault("transition.seed", 0)
	v.SetDefault("transition.scatter", scene.DefaultScatter)

	// -- Frame --
	v.SetDefault("frame.tps", 60)

	// -- Server --
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.burst", 5)
	v.SetDefault("server.max_scenes", 64)
	v.SetDefault("server.shutdown_timeout", "5s")

	// -- Log --
	v.SetDefault("log.level", "info")
}

// NewViper returns a viper instance with defaults and environment
// overrides wired up.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or searches for periodix.{yaml,toml,json}
// in the working directory and the user config directory when path is empty.
// A missing file in search mode is not an error.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

// ReadFile merges a config file into v. See [Load] for the lookup rules.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if os.IsNotExist(err) || stderrors.As(err, &notFound) {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
		}
		return nil
	}

	v.SetConfigName("periodix")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "periodix"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config")
	}
	return nil
}

// NewConfigFromViper decodes and validates the settings held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Transition.Duration < 0 {
		return errors.Configuration("transition.duration must not be negative, got %s", c.Transition.Duration)
	}
	if !layout.Valid(c.Transition.Initial) {
		return errors.Configuration("transition.initial: unknown layout %q", c.Transition.Initial)
	}
	if _, ok := tween.Lookup(c.Transition.Easing); !ok {
		return errors.Configuration("transition.easing: unknown easing %q (want one of %v)",
			c.Transition.Easing, tween.EasingNames())
	}
	if c.Transition.Scatter < 0 {
		return errors.Configuration("transition.scatter must not be negative")
	}
	if c.Frame.TPS <= 0 {
		return errors.Configuration("frame.tps must be a positive integer")
	}
	if c.Server.RateLimit <= 0 {
		return errors.Configuration("server.rate_limit must be positive")
	}
	if c.Server.Burst <= 0 {
		return errors.Configuration("server.burst must be a positive integer")
	}
	if c.Server.MaxScenes <= 0 {
		return errors.Configuration("server.max_scenes must be a positive integer")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Configuration("log.level: %v", err)
	}
	return nil
}

// Records returns the configured dataset: the file at Dataset.Path, or the
// built-in periodic table.
func (c *Config) Records() (dataset.Dataset, error) {
	if c.Dataset.Path == "" {
		return dataset.Builtin(), nil
	}
	return dataset.Load(c.Dataset.Path)
}

// SceneOptions translates the transition settings into scene options.
func (c *Config) SceneOptions() []scene.Option {
	opts := []scene.Option{scene.WithScatter(c.Transition.Scatter)}
	if ease, ok := tween.Lookup(c.Transition.Easing); ok {
		opts = append(opts, scene.WithEasing(ease))
	}
	if c.Transition.Seed != 0 {
		opts = append(opts, scene.WithSeed(c.Transition.Seed))
	}
	if c.Dataset.Count >= 0 {
		opts = append(opts, scene.WithCount(c.Dataset.Count))
	}
	return opts
}

// NewScene loads the configured dataset and builds a scene from it.
func (c *Config) NewScene(extra ...scene.Option) (*scene.Scene, error) {
	records, err := c.Records()
	if err != nil {
		return nil, err
	}
	return scene.New(records, append(c.SceneOptions(), extra...)...)
}
