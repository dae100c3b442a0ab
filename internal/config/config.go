package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Version is the service version reported by the health endpoint.
const Version = "1.1.0"

// Config holds all configuration for the VHI dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Data source configuration
	VHIEndpoint string `env:"VHI_ENDPOINT,default=https://www.star.nesdis.noaa.gov/smcd/emb/vci/VH/get_TS_admin.php"`
	Country     string `env:"VHI_COUNTRY,default=UKR"`
	YearFrom    int    `env:"VHI_YEAR_FROM,default=1981"`
	YearTo      int    `env:"VHI_YEAR_TO,default=2025"`

	// Province codes run from 1 to ProvinceMax in the source's own
	// numbering, which covers more locals than canonical regions.
	ProvinceMax int `env:"VHI_PROVINCE_MAX,default=27"`

	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=30s"`

	// Storage configuration
	DataDir   string `env:"DATA_DIR,default=data_csv"`
	GCSBucket string `env:"GCS_BUCKET"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=local"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.YearFrom > cfg.YearTo {
		return nil, fmt.Errorf("VHI_YEAR_FROM (%d) must not exceed VHI_YEAR_TO (%d)", cfg.YearFrom, cfg.YearTo)
	}
	if cfg.ProvinceMax < 1 {
		return nil, fmt.Errorf("VHI_PROVINCE_MAX must be positive, got %d", cfg.ProvinceMax)
	}
	if cfg.Environment == "gcs" && cfg.GCSBucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET is required when ENVIRONMENT=gcs")
	}

	return &cfg, nil
}
