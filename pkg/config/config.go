package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds process-level settings read at startup
type Config struct {
	Env          string        `mapstructure:"ENV"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	DataPath     string        `mapstructure:"DATA_PATH"`
	FetchTimeout time.Duration `mapstructure:"FETCH_TIMEOUT"`
	RecurWeeks   int           `mapstructure:"RECUR_WEEKS"`
}

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "SCHEDULER"

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads settings from SCHEDULER_* environment variables and an optional
// scheduler.yaml in the given directories. Missing files are not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("scheduler")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_PATH", "data/data.json")
	v.SetDefault("FETCH_TIMEOUT", 10*time.Second)
	v.SetDefault("RECUR_WEEKS", 26)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}
