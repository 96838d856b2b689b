package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	ShopDomain           string
	AccessToken          string
	APIVersion           string
	CommerceBaseURL      string
	NotifySecret         string
	NotifySecretHash     string
	Email                EmailConfig
	TrackingURL          string
	StoreName            string
	RequestTimeout       time.Duration
	ShutdownTimeout      time.Duration
	NotifyInterval       time.Duration
	ClassifyConcurrency  int
	AllowEmaillessLookup bool
	LogLevel             slog.Level
}

// EmailConfig describes the SMTP transport used for reminders.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
}

// Enabled reports whether enough settings are present to send mail.
func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.Username != ""
}

// ImplicitTLS reports whether the connection is TLS from the first byte
// rather than upgraded with STARTTLS.
func (e EmailConfig) ImplicitTLS() bool {
	return e.SSL || e.Port == implicitTLSPort
}

const (
	defaultRunAddress          = ":8080"
	defaultAPIVersion          = "2023-10"
	defaultTrackingURL         = "https://krutika-tracking.vercel.app/"
	defaultStoreName           = "Kruthika Designer Studio"
	defaultSMTPHost            = "smtp.gmail.com"
	defaultSMTPPort            = 587
	implicitTLSPort            = 465
	defaultRequestTimeout      = 15 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultClassifyConcurrency = 1
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	// a missing .env file is the normal case outside local development
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		ShopDomain:       getString(lookup, "SHOP_DOMAIN", ""),
		AccessToken:      getString(lookup, "SHOPIFY_ACCESS_TOKEN", ""),
		APIVersion:       getString(lookup, "SHOPIFY_API_VERSION", defaultAPIVersion),
		CommerceBaseURL:  getString(lookup, "COMMERCE_BASE_URL", ""),
		NotifySecret:     getString(lookup, "CRON_API_KEY", ""),
		NotifySecretHash: getString(lookup, "CRON_API_KEY_HASH", ""),
		Email: EmailConfig{
			Host:     getString(lookup, "EMAIL_HOST", defaultSMTPHost),
			Port:     getInt(lookup, "EMAIL_PORT", defaultSMTPPort),
			Username: getString(lookup, "EMAIL_USER", ""),
			Password: getString(lookup, "EMAIL_PASSWORD", ""),
			From:     getString(lookup, "EMAIL_FROM", ""),
			SSL:      getBool(lookup, "EMAIL_SSL", false),
		},
		TrackingURL:          getString(lookup, "TRACKING_URL", defaultTrackingURL),
		StoreName:            getString(lookup, "STORE_NAME", defaultStoreName),
		RequestTimeout:       getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		NotifyInterval:       getDuration(lookup, "NOTIFY_INTERVAL", 0),
		ClassifyConcurrency:  getInt(lookup, "CLASSIFY_CONCURRENCY", defaultClassifyConcurrency),
		AllowEmaillessLookup: getBool(lookup, "ALLOW_EMAILLESS_LOOKUP", true),
	}

	fs := flag.NewFlagSet("ordertrack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		notifyIntervalStr  = cfg.NotifyInterval.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.ShopDomain, "shop", cfg.ShopDomain, "Commerce shop domain")
	fs.StringVar(&cfg.CommerceBaseURL, "commerce-url", cfg.CommerceBaseURL, "Override for the commerce admin API base URL")
	fs.StringVar(&cfg.TrackingURL, "tracking-url", cfg.TrackingURL, "Public tracking page linked from reminder emails")
	fs.IntVar(&cfg.ClassifyConcurrency, "classify-concurrency", cfg.ClassifyConcurrency, "Parallel product lookups during classification")
	fs.BoolVar(&cfg.AllowEmaillessLookup, "allow-emailless-lookup", cfg.AllowEmaillessLookup, "Match orders that have no email on file by number only")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Commerce API request timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&notifyIntervalStr, "notify-interval", notifyIntervalStr, "In-process reminder interval, 0 disables")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.NotifyInterval, err = time.ParseDuration(notifyIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid notify interval: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("CRON_API_KEY_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read notify secret file: %w", err)
		}
		cfg.NotifySecret = strings.TrimSpace(string(content))
	}

	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.Username
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyInterval < 0 {
		cfg.NotifyInterval = 0
	}

	if cfg.ClassifyConcurrency <= 0 {
		cfg.ClassifyConcurrency = defaultClassifyConcurrency
	}

	if cfg.Email.Port <= 0 {
		cfg.Email.Port = defaultSMTPPort
	}

	cfg.ShopDomain = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(cfg.ShopDomain), "https://"), "/")

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
