package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/moodmate/auth/internal/auth/store"
)

// HousekeepingService periodically deletes expired refresh and password
// reset token rows so the database does not grow without bound.
//
// It is off unless explicitly configured with a positive interval;
// expired rows are already invisible to every lookup, so purging them is
// purely a storage concern.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. An interval of
// zero or less disables it: Start and Stop become no-ops.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	if s.Interval <= 0 {
		close(s.doneCh)
		s.Logger.Info("housekeeping disabled")
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker. Blocks until any
// in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes expired records. Each deletion is independent so a
// failure in one table does not stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now().UTC()
	s.Logger.Info("starting housekeeping cleanup")

	if err := s.Store.RefreshTokens().DeleteExpired(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	} else {
		s.Logger.Debug("deleted expired refresh tokens")
	}

	if err := s.Store.ResetTokens().DeleteExpired(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired password reset tokens", "error", err)
	} else {
		s.Logger.Debug("deleted expired password reset tokens")
	}

	s.Logger.Info("housekeeping cleanup completed")
}
