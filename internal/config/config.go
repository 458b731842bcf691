package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	// Contact form submission
	Contact ContactConfig

	// Mailgun delivery (CONTACT_SINK=mailgun)
	Mailgun MailgunConfig

	// Visitor sessions
	Session SessionConfig

	// Marketing copy
	Content ContentConfig

	// OpenTelemetry
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ContactConfig holds contact form settings
type ContactConfig struct {
	// Sink selects the delivery backend: "relay" (form-relay HTTP endpoint) or "mailgun"
	Sink string `env:"CONTACT_SINK" envDefault:"relay"`

	// RelayEndpoint is the form-relay URL submissions are POSTed to (e.g. a Formspree form URL)
	RelayEndpoint string `env:"CONTACT_RELAY_ENDPOINT" envDefault:""`

	// SubmitTimeout bounds a single outbound submission
	SubmitTimeout time.Duration `env:"CONTACT_SUBMIT_TIMEOUT" envDefault:"10s"`

	// SuccessNoticeDuration is how long the success notice stays before the form returns to idle
	SuccessNoticeDuration time.Duration `env:"CONTACT_SUCCESS_NOTICE_DURATION" envDefault:"5s"`

	// FailureNoticeDuration is how long a failure notice stays before the form returns to idle
	FailureNoticeDuration time.Duration `env:"CONTACT_FAILURE_NOTICE_DURATION" envDefault:"4s"`

	// RequestsPerMinute limits contact posts per client IP
	RequestsPerMinute int `env:"CONTACT_RATE_LIMIT_PER_MINUTE" envDefault:"10"`

	// Burst is the rate limiter burst size
	Burst int `env:"CONTACT_RATE_LIMIT_BURST" envDefault:"3"`
}

// MailgunConfig holds Mailgun settings
type MailgunConfig struct {
	Domain    string `env:"MAILGUN_DOMAIN" envDefault:""`
	APIKey    string `env:"MAILGUN_API_KEY" envDefault:""`
	APIBase   string `env:"MAILGUN_API_BASE" envDefault:""`
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@bigeen.com"`
	FromName  string `env:"EMAIL_FROM_NAME" envDefault:"Bigeen Website"`
	// NotifyTo receives contact submissions
	NotifyTo string `env:"CONTACT_NOTIFY_TO" envDefault:""`
}

// IsConfigured returns true if Mailgun is configured
func (m *MailgunConfig) IsConfigured() bool {
	return m.Domain != "" && m.APIKey != "" && m.NotifyTo != ""
}

// SessionConfig holds visitor session settings
type SessionConfig struct {
	// CookieName is the session cookie name
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"bigeen_session"`
	// HashKey signs the session cookie; a random key is generated when empty
	HashKey string `env:"SESSION_HASH_KEY" envDefault:""`
	// TTL is the idle time after which a session is dropped
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	// SweepSchedule is the cron spec for the session janitor
	SweepSchedule string `env:"SESSION_SWEEP_SCHEDULE" envDefault:"@every 1m"`
	// Secure marks the cookie as HTTPS-only
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// ContentConfig holds marketing copy settings
type ContentConfig struct {
	// File overrides the embedded copy with a YAML file
	File string `env:"CONTENT_FILE" envDefault:""`
	// Watch reloads File when it changes
	Watch bool `env:"CONTENT_WATCH" envDefault:"false"`
}

// OtelConfig holds OpenTelemetry configuration.
// Tracing is disabled when ExporterEndpoint is empty.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName      string  `env:"OTEL_SERVICE_NAME"            envDefault:"bigeen-website"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE"           envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Contact.Sink {
	case "relay", "mailgun":
	default:
		return fmt.Errorf("CONTACT_SINK must be \"relay\" or \"mailgun\", got %q", c.Contact.Sink)
	}
	if c.Contact.SubmitTimeout <= 0 {
		return fmt.Errorf("CONTACT_SUBMIT_TIMEOUT must be positive")
	}
	if c.Contact.RequestsPerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("contact_sink", cfg.Contact.Sink),
		slog.Bool("relay_endpoint_set", cfg.Contact.RelayEndpoint != ""),
	)

	// A missing endpoint is a deployment defect, but the site still serves pages;
	// submissions fail with a configuration notice.
	if cfg.Contact.Sink == "relay" && cfg.Contact.RelayEndpoint == "" {
		log.Warn("CONTACT_RELAY_ENDPOINT is not set; contact submissions will fail")
	}

	return cfg, nil
}
