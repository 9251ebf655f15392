package core

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config contains the options of an exchange client.
// Market and Namespace together select the base URL.
type Config struct {
	Market      Market       `json:"market" yaml:"market" validate:"enum"`
	Namespace   Namespace    `json:"namespace" yaml:"namespace" validate:"enum"`
	Credentials *Credentials `json:"credentials,omitempty" yaml:"credentials,omitempty" validate:"-"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the given market and namespace with a
// 10s timeout and info logging.
func DefaultConfig(market Market, namespace Namespace) *Config {
	return &Config{
		Market:    market,
		Namespace: namespace,
		Timeout:   10 * time.Second,
		LogLevel:  "info",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	})
	return v
}

// ValidateStruct checks the validate tags of v. Failures match ErrValidation.
// The "enum" tag accepts any value with a Valid() bool method that returns true.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Validate checks the config and its credentials.
// Every failure matches ErrConfiguration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if c.Credentials != nil {
		if err := validate.Struct(c.Credentials); err != nil {
			return fmt.Errorf("%w: credentials: %v", ErrConfiguration, err)
		}
		if _, err := ParseMarket(c.Credentials.Market); err != nil {
			return fmt.Errorf("credentials: %w", err)
		}
	}
	return nil
}

// BaseURL returns the market host joined with the namespace prefix.
func (c *Config) BaseURL() string {
	return c.Market.Host() + c.Namespace.Prefix()
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// LoadConfig reads a YAML config file. Fields missing from the file keep the
// DefaultConfig values for a futures client.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig(MarketFutures, NamespaceFutures)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config %s: %v", ErrConfiguration, path, err)
	}

	if cfg.Credentials != nil {
		creds := cfg.Credentials.Normalized()
		cfg.Credentials = &creds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
