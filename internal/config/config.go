package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"Finsight"`
		Environment string `envconfig:"APP_ENV" default:"development"`
		Port        int    `envconfig:"PORT" default:"8080"`
	}

	Source struct {
		// Kind selects where transactions come from: "csv" or "sheets".
		Kind            string `envconfig:"SOURCE_KIND" default:"csv"`
		Path            string `envconfig:"SOURCE_PATH" default:"transactions.csv"`
		Comma           string `envconfig:"SOURCE_COMMA" default:","`
		SpreadsheetID   string `envconfig:"SHEETS_SPREADSHEET_ID"`
		ReadRange       string `envconfig:"SHEETS_READ_RANGE"`
		CredentialsFile string `envconfig:"SHEETS_CREDENTIALS_FILE"`
		// RefreshCron is a cron expression for scheduled snapshot
		// reloads. Empty disables the scheduler.
		RefreshCron string `envconfig:"SOURCE_REFRESH_CRON"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret signs and verifies bearer tokens. Empty leaves the
		// API unauthenticated.
		Secret string `envconfig:"AUTH_SECRET"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
