package session

import (
	"sync"
	"time"
)

// sampler is a cancellable periodic task polling the widget for
// position and duration. It is active only while playback is in the
// Playing state; Start and Stop are idempotent so re-entrant calls
// never leak a duplicate ticker.
type sampler struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// Start launches the polling loop if one is not already running.
func (s *sampler) Start(period time.Duration, poll func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		return
	}

	stopCh := make(chan struct{})
	s.stopCh = stopCh

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				poll()
			}
		}
	}()
}

// Stop releases the ticker if one is running.
func (s *sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh == nil {
		return
	}

	close(s.stopCh)
	s.stopCh = nil
}

// Running reports whether the polling loop is active.
func (s *sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCh != nil
}
