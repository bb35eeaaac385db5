package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const AppEnvProduction = "production"

type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	ServerPort string `envconfig:"PORT" default:"5000"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	JWTSecret  string        `envconfig:"JWT_SECRET" default:"changeme"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	StripeSecretKey     string        `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	PaymentTimeout      time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`

	StrictStatusTransitions bool `envconfig:"STRICT_STATUS_TRANSITIONS" default:"false"`
	SeedCatalog             bool `envconfig:"SEED_CATALOG" default:"true"`
	AuditQueueSize          int  `envconfig:"AUDIT_QUEUE_SIZE" default:"100"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate reports every invalid value at once.
func (c *Config) validate() error {
	var errs error
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = multierr.Append(errs, fmt.Errorf("JWT_SECRET must not be empty"))
	}
	if c.TokenTTL <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = multierr.Append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost))
	}
	if c.PaymentTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("PAYMENT_TIMEOUT must be positive, got %s", c.PaymentTimeout))
	}
	if c.AuditQueueSize < 0 {
		errs = multierr.Append(errs, fmt.Errorf("AUDIT_QUEUE_SIZE must not be negative, got %d", c.AuditQueueSize))
	}
	return errs
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, AppEnvProduction)
}

// PaymentsEnabled reports whether a Stripe secret key was provided.
func (c *Config) PaymentsEnabled() bool {
	return strings.TrimSpace(c.StripeSecretKey) != ""
}
