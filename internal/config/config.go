package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned by Validate when no session secret is configured
// outside of development.
var ErrMissingSecret = errors.New("config: SESSION_SECRET is required outside development")

const (
	defaultServerAddr  = ":8080"
	defaultBaseURL     = "http://localhost:8080"
	defaultEnv         = "development"
	defaultLogFormat   = "text"
	defaultLogLevel    = "debug"
	defaultToastTTL    = 5 * time.Second
	defaultSubmitDelay = 2 * time.Second
	defaultLocale      = "en-IN"

	// devSessionSecret keeps local development working without a .env file.
	devSessionSecret = "helios-development-session-secret"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on. Tests substitute their own implementation.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetEnv() string
	IsDevelopment() bool
	GetLogFormat() string
	GetLogLevel() string
	GetToastTTL() time.Duration
	GetSubmitDelay() time.Duration
	GetStaticDir() string
	GetLocale() string
	GetEmailSender() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	Env           string
	LogFormat     string
	LogLevel      string
	ToastTTL      time.Duration
	SubmitDelay   time.Duration
	StaticDir     string
	Locale        string
	EmailSender   string
}

// New loads configuration from environment variables, reading a .env file
// first when one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:    strings.TrimRight(getEnv("APP_BASE_URL", defaultBaseURL), "/"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           strings.ToLower(getEnv("APP_ENV", defaultEnv)),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		ToastTTL:      getDuration("TOAST_TTL", defaultToastTTL),
		SubmitDelay:   getDuration("SUBMIT_DELAY", defaultSubmitDelay),
		StaticDir:     os.Getenv("STATIC_DIR"),
		Locale:        getEnv("LOCALE", defaultLocale),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
	}

	if cfg.SessionSecret == "" && cfg.IsDevelopment() {
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

// Validate reports configuration that would make the server unsafe to start.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetEnv() string { return c.Env }
func (c *Config) IsDevelopment() bool { return c.Env == defaultEnv }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetToastTTL() time.Duration { return c.ToastTTL }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetStaticDir() string { return c.StaticDir }
func (c *Config) GetLocale() string { return c.Locale }
func (c *Config) GetEmailSender() string { return c.EmailSender }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration parses a time.Duration, falling back on a missing or malformed value.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
