package service

import (
	"context"
	"log/slog"
	"time"
)

// staleInvitationRetention is how long terminal invitations (accepted,
// declined, expired) are kept before the housekeeping purge removes them.
const staleInvitationRetention = 90 * 24 * time.Hour

// HousekeepingService periodically stamps lapsed invitations as expired and
// purges old terminal ones, keeping the invitations table from growing
// without bound. Correctness never depends on it: expiry is also evaluated
// lazily at accept and decline time.
type HousekeepingService struct {
	Invitations InvitationsCleaner
	Logger      *slog.Logger
	Interval    time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// InvitationsCleaner is the slice of the invitation repository that
// housekeeping needs.
type InvitationsCleaner interface {
	MarkExpiredInvitations(ctx context.Context, now time.Time) (int64, error)
	DeleteStaleInvitations(ctx context.Context, cutoff time.Time) error
}

// NewHousekeepingService creates the worker. An interval of zero or less
// defaults to 1 hour.
func NewHousekeepingService(invitations InvitationsCleaner, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Invitations: invitations,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs one housekeeping pass. The two steps are independent; a
// failure in one does not stop the other.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	stamped, err := s.Invitations.MarkExpiredInvitations(ctx, now)
	if err != nil {
		s.Logger.Error("failed to stamp expired invitations", "error", err)
	} else if stamped > 0 {
		s.Logger.Info("stamped expired invitations", "count", stamped)
	}

	if err := s.Invitations.DeleteStaleInvitations(ctx, now.Add(-staleInvitationRetention)); err != nil {
		s.Logger.Error("failed to purge stale invitations", "error", err)
	}
}
