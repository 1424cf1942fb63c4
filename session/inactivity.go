package session

import (
	"sync"
	"time"
)

// idleTimer is a restartable one-shot countdown. Bump cancels any
// pending fire and schedules a new one; stale fires from a superseded
// schedule are discarded via a generation counter, so a fire races a
// Bump or Cancel safely.
type idleTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Bump (re)schedules fire to run after delay, replacing any pending
// schedule.
func (t *idleTimer) Bump(delay time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		stale := gen != t.gen
		t.mu.Unlock()
		if stale {
			return
		}
		fire()
	})
}

// Cancel discards any pending fire. Idempotent.
func (t *idleTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
