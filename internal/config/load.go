package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every error returned by Load and LoadFile.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// EnvPrefix prefixes every environment variable read by Load, so that
	// server.port is set with SOLITAIRE_SERVER_PORT.
	EnvPrefix = "SOLITAIRE"

	// FileName is the base name of the optional YAML config file.
	FileName = "solitaire"
)

// Load configuration from environment variables and optionally a
// solitaire.yaml file in the working directory or $HOME/.config/solitaire.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "solitaire"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: reading config file: %w", ErrInvalidConfig, err)
		}
	}

	return decode(v)
}

// LoadFile is like Load but reads the given config file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading config file: %w", ErrInvalidConfig, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("deck.decks", 1)
	v.SetDefault("deck.jokers", 2)
	v.SetDefault("deck.riffles", 7)
	v.SetDefault("deck.noise", 5)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal configuration: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: configuration validation failed: %w", ErrInvalidConfig, err)
	}
	return nil
}
