package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const (
	defaultNotifyURL = "http://localhost:8080/notify"
	defaultTimeout   = 5 * time.Minute
)

var errMissingKey = errors.New("NOTIFY_API_KEY or CRON_API_KEY must be set")

type triggerConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

func loadTriggerConfig(args []string, lookup func(string) (string, bool)) (triggerConfig, error) {
	cfg := triggerConfig{URL: defaultNotifyURL, Timeout: defaultTimeout}
	if v, ok := lookup("NOTIFY_URL"); ok && v != "" {
		cfg.URL = v
	}
	for _, key := range []string{"NOTIFY_API_KEY", "CRON_API_KEY"} {
		if v, ok := lookup(key); ok && v != "" {
			cfg.APIKey = v
			break
		}
	}

	fs := flag.NewFlagSet("notify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.URL, "url", cfg.URL, "Notify endpoint URL")
	fs.StringVar(&cfg.APIKey, "key", cfg.APIKey, "Shared notify secret")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return triggerConfig{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.APIKey == "" {
		return triggerConfig{}, errMissingKey
	}
	return cfg, nil
}

// trigger posts the secret to the notify endpoint and logs the run report.
func trigger(ctx context.Context, client *http.Client, cfg triggerConfig, log *slog.Logger) error {
	body, err := json.Marshal(dto.NotifyRequest{APIKey: cfg.APIKey})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("call notify endpoint: %w", err)
	}
	defer resp.Body.Close()

	var report dto.NotifyResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&report)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := reason(report)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("notify endpoint returned %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if !report.Success {
		return fmt.Errorf("notify endpoint reported failure: %s", reason(report))
	}

	attrs := []any{slog.String("message", report.Message)}
	if report.Stats != nil {
		attrs = append(attrs,
			slog.Int("total_orders", report.Stats.TotalOrders),
			slog.Int("eligible_orders", report.Stats.EligibleOrders),
			slog.Int("emails_sent", report.Stats.EmailsSent),
			slog.Int("errors", report.Stats.Errors),
		)
	}
	log.Info("reminder run completed", attrs...)

	for _, failure := range report.Errors {
		log.Warn("reminder not delivered",
			slog.String("order", failure.Order),
			slog.String("email", failure.Email),
			slog.String("error", failure.Error),
		)
	}
	return nil
}

func reason(report dto.NotifyResponse) string {
	if report.Error != "" {
		return report.Error
	}
	return report.Message
}
