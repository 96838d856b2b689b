package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// NotificationRunner exposes the reminder run required by the scheduler.
type NotificationRunner interface {
	RunNotifications(ctx context.Context) (*model.NotificationReport, error)
}

// NotificationScheduler triggers reminder runs on a fixed interval.
// A zero interval disables it; runs never overlap.
type NotificationScheduler struct {
	runner   NotificationRunner
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationScheduler constructs the scheduler.
func NewNotificationScheduler(runner NotificationRunner, interval time.Duration, logger *slog.Logger) *NotificationScheduler {
	if interval < 0 {
		interval = 0
	}
	return &NotificationScheduler{runner: runner, interval: interval, logger: logger}
}

// Enabled reports whether Start launches a background loop.
func (s *NotificationScheduler) Enabled() bool {
	return s.interval > 0
}

// Start launches the background loop unless disabled or already running.
func (s *NotificationScheduler) Start(ctx context.Context) {
	if !s.Enabled() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (s *NotificationScheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *NotificationScheduler) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *NotificationScheduler) runOnce(ctx context.Context) {
	report, err := s.runner.RunNotifications(ctx)
	if err != nil {
		s.logger.Error("scheduled reminder run failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("scheduled reminder run completed",
		slog.String("run_id", report.RunID),
		slog.Int("emails_sent", report.EmailsSent),
		slog.Int("errors", len(report.Failures)),
	)
}
