// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port                  string  `mapstructure:"PORT"`
	DBHost                string  `mapstructure:"DB_HOST"`
	DBPort                string  `mapstructure:"DB_PORT"`
	DBUser                string  `mapstructure:"DB_USER"`
	DBPassword            string  `mapstructure:"DB_PASSWORD"`
	DBName                string  `mapstructure:"DB_NAME"`
	DBSSLMode             string  `mapstructure:"DB_SSLMODE"`
	RedisURL              string  `mapstructure:"REDIS_URL"`
	AllowedOrigins        string  `mapstructure:"ALLOWED_ORIGINS"`
	FeatureFlags          string  `mapstructure:"FEATURE_FLAGS"`
	Env                   string  `mapstructure:"APP_ENV"`
	RevenuePollIntervalMS int     `mapstructure:"REVENUE_POLL_INTERVAL_MS"`
	TracingEnabled        bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter       string  `mapstructure:"TRACING_EXPORTER"`
	TracingOTLPEndpoint   string  `mapstructure:"TRACING_OTLP_ENDPOINT"`
	TracingSamplerRatio   float64 `mapstructure:"TRACING_SAMPLER_RATIO"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// Initial read to get APP_ENV if set in base config
	// We intentionally ignore this error as the config file may not exist yet
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			log.Printf("No profile-specific config 'config.%s.yml' found, using environment and defaults", env)
		} else {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// Set default values for development
	viper.SetDefault("PORT", "8375")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "teasr")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	viper.SetDefault("FEATURE_FLAGS", "viral_ticker=on")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REVENUE_POLL_INTERVAL_MS", 10000)
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("TRACING_OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLER_RATIO", 1.0)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.DBSSLMode = strings.ToLower(strings.TrimSpace(config.DBSSLMode))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.RevenuePollIntervalMS < 1000 {
		return errors.New("REVENUE_POLL_INTERVAL_MS must be at least 1000")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	// Strict checks for production
	if isProduction {
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			return errors.New("DB_SSLMODE must not be 'disable' in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	}

	return nil
}
