package main

import (
	"fmt"

	"github.com/RRWM1rr0rB/uuidx/core/basex"
	"github.com/RRWM1rr0rB/uuidx/core/uuid"
	"github.com/RRWM1rr0rB/uuidx/errors"
	"github.com/RRWM1rr0rB/uuidx/logging"
)

// Config holds the settings shared by all commands.
type Config struct {
	Alphabet  string
	Symbols   string
	LogLevel  string
	LogJSON   bool
	LogSource bool
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied before opts.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		Alphabet: basex.PresetBase62,
		LogLevel: "info",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAlphabet selects a preset alphabet by name.
func WithAlphabet(name string) Option {
	return func(c *Config) {
		c.Alphabet = name
	}
}

// WithSymbols sets a custom alphabet. It takes precedence over WithAlphabet.
func WithSymbols(symbols string) Option {
	return func(c *Config) {
		c.Symbols = symbols
	}
}

// WithLogLevel sets the minimum log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogJSON switches log output to JSON.
func WithLogJSON(json bool) Option {
	return func(c *Config) {
		c.LogJSON = json
	}
}

// WithLogSource adds source locations to log entries.
func WithLogSource(source bool) Option {
	return func(c *Config) {
		c.LogSource = source
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var problems error
	if c.Symbols == "" && c.Alphabet == "" {
		problems = errors.Append(problems, errors.New("alphabet cannot be empty"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = errors.Append(problems, fmt.Errorf("log level %q: %w", c.LogLevel, err))
	}
	return problems
}

// Transcoder builds the transcoder selected by the config.
func (c *Config) Transcoder() (*uuid.Transcoder, error) {
	if c.Symbols != "" {
		return uuid.FromAlphabet(c.Symbols)
	}
	return uuid.FromPreset(c.Alphabet)
}
