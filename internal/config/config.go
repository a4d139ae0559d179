// Package config loads application configuration from an optional file and
// LAUNCHLENS_-prefixed environment variables.
package config

import (
	"github.com/spf13/viper"

	"github.com/launchlens/launchlens/pkg/errors"
	"github.com/launchlens/launchlens/validate"
)

// Config is the complete application configuration.
type Config struct {
	Model    ModelConfig    `mapstructure:"model"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Defaults DefaultMetrics `mapstructure:"defaults"`
}

// ModelConfig controls training of the prediction service.
type ModelConfig struct {
	Seed         uint64 `mapstructure:"seed"`
	TrainingSize int    `mapstructure:"training_size"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultMetrics are the metric values used when a flag is not provided.
type DefaultMetrics struct {
	Funding    float64 `mapstructure:"funding"`
	TeamSize   float64 `mapstructure:"team_size"`
	MarketSize float64 `mapstructure:"market_size"`
	Revenue    float64 `mapstructure:"revenue"`
	GrowthRate float64 `mapstructure:"growth_rate"`
}

// Load reads configuration from the given file (optional; pass "" to use
// defaults and environment only) and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("LAUNCHLENS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures default values for all options. The default
// metrics are the documented baseline input.
func setDefaults(v *viper.Viper) {
	v.SetDefault("model.seed", 42)
	v.SetDefault("model.training_size", 1000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("defaults.funding", 500000)
	v.SetDefault("defaults.team_size", 10)
	v.SetDefault("defaults.market_size", 50000000)
	v.SetDefault("defaults.revenue", 25000)
	v.SetDefault("defaults.growth_rate", 15)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Model.TrainingSize < 3 {
		return errors.Newf("model.training_size must be at least 3, got %d", c.Model.TrainingSize)
	}
	if err := validate.Metrics(
		c.Defaults.Funding,
		c.Defaults.TeamSize,
		c.Defaults.MarketSize,
		c.Defaults.Revenue,
		c.Defaults.GrowthRate,
	); err != nil {
		return errors.Wrap(err, "defaults out of range")
	}
	return nil
}
