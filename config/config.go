package config

import (
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observe"
)

// Config contains the configuration consumed by the stream kit packages.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Stream      StreamConfig  `yaml:"stream" mapstructure:"stream"`
	Metrics     MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// StreamConfig holds defaults for stream operators.
type StreamConfig struct {
	// DefaultDebounce is the quiet period applications pass to
	// stream.Debounce when no explicit interval is configured.
	DefaultDebounce time.Duration `yaml:"default_debounce" mapstructure:"default_debounce"`
}

// MetricsConfig holds the OTLP metric export settings.
type MetricsConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// MeterConfig converts the metric settings into an observe.MeterConfig for
// the given service identity.
func (c MetricsConfig) MeterConfig(serviceName, version, environment string) observe.MeterConfig {
	mc := observe.DefaultMeterConfig(serviceName)
	mc.ServiceVersion = version
	mc.Environment = environment
	if c.Endpoint != "" {
		mc.Endpoint = c.Endpoint
	}
	mc.Insecure = c.Insecure
	if c.Interval > 0 {
		mc.Interval = c.Interval
	}
	return mc
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	if c.Stream.DefaultDebounce == 0 {
		c.Stream.DefaultDebounce = 250 * time.Millisecond
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = "localhost:4318"
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = 15 * time.Second
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.ConfigInvalid("name", "required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return errors.ConfigInvalid("environment", "must be one of [development, staging, production]")
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.ConfigInvalid("logging", err.Error())
	}
	if c.Stream.DefaultDebounce < 0 {
		return errors.ConfigInvalid("stream.default_debounce", "must not be negative")
	}
	if c.Metrics.Interval < 0 {
		return errors.ConfigInvalid("metrics.interval", "must not be negative")
	}
	return nil
}
