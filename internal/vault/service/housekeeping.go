package service

import (
	"log/slog"
	"time"
)

// Purger drops expired entries and reports how many were removed.
// *otpcache.Cache satisfies it.
type Purger interface {
	Purge() int
}

// HousekeepingService periodically sweeps expired one-time codes so the
// cache does not hold them until they are next looked up.
type HousekeepingService struct {
	OTP      Purger
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one minute.
func NewHousekeepingService(otp Purger, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		OTP:      otp,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished its current sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs one cleanup pass and returns the number of codes removed.
func (s *HousekeepingService) Sweep() int {
	n := s.OTP.Purge()
	if n > 0 {
		s.Logger.Debug("expired otp codes purged", slog.Int("removed", n))
	}
	return n
}
