package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the service configuration.
type Config struct {
	AppPort            string
	DBDriver           string
	DatabaseDSN        string
	DBLogLevel         string
	RabbitMQURL        string
	ProductEventsQueue string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper applies defaults to v, binds the environment and builds a Config.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:inventory.db?cache=shared")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("PRODUCT_EVENTS_QUEUE", "product_events")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:            v.GetString("APP_PORT"),
		DBDriver:           v.GetString("DB_DRIVER"),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),
		DBLogLevel:         v.GetString("DB_LOG_LEVEL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		ProductEventsQueue: v.GetString("PRODUCT_EVENTS_QUEUE"),
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s, %s or %s)", cfg.DBDriver, DriverSQLite, DriverPostgres, DriverMemory)
	}
	if cfg.DBDriver != DriverMemory && cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required for driver %s", cfg.DBDriver)
	}
	return cfg, nil
}

// EventsEnabled reports whether product events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}
