package session

import (
	"sync"
	"time"

	"storefront-checkout/internal/pkg/clock"
)

const DefaultTickInterval = time.Second

// Scheduler runs one recurring callback. Starting it again replaces the
// running ticker, so at most one is ever alive.
type Scheduler struct {
	clock    clock.Clock
	interval time.Duration

	mu     sync.Mutex
	ticker clock.Ticker
	done   chan struct{}
}

func NewScheduler(clk clock.Clock, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		clock:    clk,
		interval: interval,
	}
}

func (s *Scheduler) Start(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ticker := s.clock.NewTicker(s.interval)
	done := make(chan struct{})
	s.ticker = ticker
	s.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C():
				// Stop may race with a tick already delivered.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Stop is safe to call when nothing is running, including from fn itself.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

func (s *Scheduler) stopLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}
