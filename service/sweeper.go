// file: service/sweeper.go

package service

import (
	"drone-spot-api/logger"
	"drone-spot-api/repository"
	"time"
)

// Sweeper periodically purges expired session rows. It is a hygiene
// process: refresh re-validates expiry on its own, so nothing depends on
// the sweeper's timing.
type Sweeper struct {
	sessionRepo repository.ISessionRepository
	interval    time.Duration
	now         func() time.Time
	stop        chan struct{}
	done        chan struct{}
}

func NewSweeper(sessionRepo repository.ISessionRepository, interval time.Duration, now func() time.Time) *Sweeper {
	if now == nil {
		now = time.Now
	}
	return &Sweeper{
		sessionRepo: sessionRepo,
		interval:    interval,
		now:         now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the background loop. Call Stop to end it.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		logger.Log.WithField("interval", s.interval.String()).Info("Session sweeper started")
		for {
			select {
			case <-ticker.C:
				s.SweepOnce()
			case <-s.stop:
				logger.Log.Info("Session sweeper stopped")
				return
			}
		}
	}()
}

// Stop ends the loop and waits for the current sweep, if any, to finish.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// SweepOnce runs a single purge pass. A failed pass is logged and does not
// prevent the next scheduled one.
func (s *Sweeper) SweepOnce() {
	count, err := s.sessionRepo.DeleteExpired(s.now())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to delete expired sessions")
		return
	}
	logger.Log.WithField("count", count).Info("Expired sessions deleted")
}
