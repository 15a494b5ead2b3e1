package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"birthday-rsvp/internal/notifier"
)

// ErrInvalidConfig indicates the environment does not describe a usable setup
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	SMTPProvider string `env:"SMTP_PROVIDER"`
	SMTPServer   string `env:"SMTP_SERVER"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	Email        string `env:"NOTIFIER_EMAIL,required,notEmpty"`
	Password     string `env:"NOTIFIER_PASSWORD,required,notEmpty"`

	RSVPFile  string `env:"RSVP_FILE" envDefault:"data/rsvps.json"`
	PartyFile string `env:"PARTY_FILE" envDefault:"data/party.json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads configuration from environment variables or defaults.
// When SMTP_SERVER is empty the server comes from the SMTP_PROVIDER preset,
// and so does the port unless SMTP_PORT is set.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.SMTPServer == "" && cfg.SMTPProvider != "" {
		provider, ok := LookupProvider(cfg.SMTPProvider)
		if !ok {
			return nil, fmt.Errorf("%w: unknown SMTP_PROVIDER %q", ErrInvalidConfig, cfg.SMTPProvider)
		}
		cfg.SMTPServer = provider.Host
		if port, set := os.LookupEnv("SMTP_PORT"); !set || port == "" {
			cfg.SMTPPort = provider.Port
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the SMTP settings
func (c *Config) Validate() error {
	if c.SMTPServer == "" {
		return fmt.Errorf("%w: SMTP_SERVER or SMTP_PROVIDER is required", ErrInvalidConfig)
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", ErrInvalidConfig)
	}
	return nil
}

// Notifier returns the settings the email notifier is constructed with
func (c *Config) Notifier() notifier.Config {
	return notifier.Config{
		Server:   c.SMTPServer,
		Port:     c.SMTPPort,
		Email:    c.Email,
		Password: c.Password,
	}
}
