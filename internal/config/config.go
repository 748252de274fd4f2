package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultCaloriesPerMinute is a deliberately simple estimate for
	// moderate intensity resistance training. It is not derived from
	// heart rate or MET tables.
	DefaultCaloriesPerMinute = 6
)

type Config struct {
	Environment string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	DBHost string `toml:"db_host"`
	DBPort string `toml:"db_port"`
	DBName string `toml:"db_name"`
	DBUser string `toml:"db_user"`
	// redis, used for recoverable session snapshots
	RedisHost string `toml:"redis_host"`
	RedisPort int    `toml:"redis_port"`
	// tracing
	TracingEnabled bool `toml:"tracing_enabled"`
	// training
	CaloriesPerMinute int `toml:"calories_per_minute"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	if cfg.CaloriesPerMinute <= 0 {
		cfg.CaloriesPerMinute = DefaultCaloriesPerMinute
	}

	return cfg, nil
}
