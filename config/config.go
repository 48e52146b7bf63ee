// Package config loads the demo's settings from flags and SINGLETON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "SINGLETON"

const (
	KeyLogLevel    = "log-level"
	KeyDevelopment = "development"
	KeyWorkers     = "workers"
)

var ErrNegativeWorkers = errors.New("config: workers must not be negative")

type Config struct {
	LogLevel    string `mapstructure:"log-level"`
	Development bool   `mapstructure:"development"`
	Workers     int    `mapstructure:"workers"`
}

// RegisterFlags adds the demo's flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	fs.Bool(KeyDevelopment, false, "human readable development logging")
	fs.Int(KeyWorkers, 0, "goroutines racing for the instance after the demo")
}

// New returns a viper instance bound to fs and the SINGLETON_ environment.
// fs may be nil.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDevelopment, false)
	v.SetDefault(KeyWorkers, 0)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}
	return v, nil
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	if c.Workers < 0 {
		return ErrNegativeWorkers
	}
	return nil
}
