package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Deck   DeckConfig   `mapstructure:"deck"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format"       validate:"required,oneof=json text"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DeckConfig holds the defaults used when a shuffle request leaves a
// parameter out.
type DeckConfig struct {
	Decks   int `mapstructure:"decks"   validate:"gte=1,lte=64"`
	Jokers  int `mapstructure:"jokers"  validate:"gte=0,lte=2"`
	Riffles int `mapstructure:"riffles" validate:"gte=0,lte=1000"`
	Noise   int `mapstructure:"noise"   validate:"gte=0,lte=10"`
}
