// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sendloop/sendloop/pkg/logger"
	"github.com/sendloop/sendloop/pkg/mailer/smtp"
)

// Provider selects the outbound mail backend.
type Provider string

const (
	ProviderSMTP   Provider = "smtp"
	ProviderResend Provider = "resend"
)

// Config is the full application configuration.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":3210"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"false"`

	Provider Provider `env:"MAIL_PROVIDER" envDefault:"smtp"`

	SendDelay        time.Duration `env:"SEND_DELAY" envDefault:"1s"`
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL" envDefault:"500ms"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	SMTP   smtp.Config
	Logger logger.Config
	Sentry logger.SentryConfig
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Provider != ProviderSMTP && cfg.Provider != ProviderResend {
		return Config{}, fmt.Errorf("config: unknown MAIL_PROVIDER %q", cfg.Provider)
	}
	return cfg, nil
}
