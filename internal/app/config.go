package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the reporting worker.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	WorkerHealthAddr string `envconfig:"WORKER_HEALTH_ADDR" default:":8091"`

	// ReportSweepCron drives the unattended "run due schedules" trigger.
	ReportSweepCron string `envconfig:"REPORT_SWEEP_CRON" default:"*/5 * * * *"`

	QuickSummaryTTL time.Duration `envconfig:"QUICK_SUMMARY_TTL" default:"5m"`

	DispatchFrom string `envconfig:"DISPATCH_FROM" default:"reports@fleetworks.local"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
