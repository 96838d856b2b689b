package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/polkiloo/ordertrack/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadTriggerConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(slog.LevelInfo)
	client := &http.Client{Timeout: cfg.Timeout}

	if err := trigger(ctx, client, cfg, log); err != nil {
		log.Error("reminder run failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
