package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule refreshes at midnight on the first day of every month.
const DefaultSchedule = "0 0 1 * *"

// Refresher reloads the stored holiday table.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Scheduler runs a Refresher on a cron schedule.
type Scheduler struct {
	refresher Refresher
	spec      string
	timeout   time.Duration
	logger    *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewScheduler creates a Scheduler. An empty spec uses DefaultSchedule.
func NewScheduler(refresher Refresher, spec string, logger *slog.Logger) *Scheduler {
	if spec == "" {
		spec = DefaultSchedule
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		refresher: refresher,
		spec:      spec,
		timeout:   time.Minute,
		logger:    logger,
	}
}

// Start registers the refresh job and begins dispatching it.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return fmt.Errorf("scheduler already started")
	}
	c := cron.New()
	if _, err := c.AddFunc(s.spec, s.RunOnce); err != nil {
		return fmt.Errorf("registering holiday refresh %q: %w", s.spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("holiday scheduler started", "cron", s.spec)
	return nil
}

// Stop shuts down the cron runner, waiting for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.logger.Info("holiday scheduler stopped")
}

// RunOnce performs a single refresh and logs the outcome.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("holiday refresh failed", "error", err)
		return
	}
	s.logger.Info("holiday refresh complete", "holidays", n)
}
