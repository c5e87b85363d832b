package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Ledgerlens"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ledgerlens"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Report struct {
		// ExcludedYear is omitted from every spend view.
		ExcludedYear int `envconfig:"EXCLUDED_YEAR" default:"2022"`
		// HorizonEnd bounds daily views to YYYY-MM-DD; empty means today.
		HorizonEnd string `envconfig:"REPORT_HORIZON_END" default:""`
	}

	Auth struct {
		// Secret enables bearer-JWT checks on the API when non-empty.
		Secret string `envconfig:"AUTH_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// HorizonEnd parses the configured horizon end date, falling back to today.
func (c *Config) HorizonEnd() (time.Time, error) {
	if c.Report.HorizonEnd == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	t, err := time.Parse(time.DateOnly, c.Report.HorizonEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing REPORT_HORIZON_END: %w", err)
	}

	return t, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
