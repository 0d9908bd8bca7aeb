package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
)

// Scheduler runs assignment passes on a fixed interval. It owns its own
// enabled state and interval handle; Stop prevents future passes but an
// in-flight pass runs to completion. Manual passes may overlap a periodic
// one safely because the commit write is conditioned on trip state.
type Scheduler struct {
	uc       dispatch.DispatchUC
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	running bool
}

// NewScheduler creates a scheduler running the given use case every
// interval. Non-positive intervals fall back to the 30s default.
func NewScheduler(uc dispatch.DispatchUC, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{
		uc:       uc,
		interval: interval,
	}
}

// Start enables periodic assignment passes. It is a no-op when the
// scheduler is already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	done := make(chan struct{})
	s.done = done
	s.running = true

	go s.loop(done)

	logger.Info("Dispatch scheduler started",
		logger.Duration("interval", s.interval))
}

// Stop disables periodic assignment passes. An in-flight pass is allowed
// to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	close(s.done)
	s.done = nil
	s.running = false

	logger.Info("Dispatch scheduler stopped")
}

// Running reports whether periodic passes are enabled
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Interval returns the configured pass interval
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

func (s *Scheduler) loop(done <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			select {
			case <-done:
				// tick raced with Stop
				return
			default:
			}
			// each pass gets its own context so Stop never cancels a
			// pass that has already started
			if _, err := s.uc.AssignUnassigned(context.Background()); err != nil {
				logger.Error("Scheduled assignment pass failed", logger.Err(err))
			}
		}
	}
}
