// Package guard adapts an opaque process-inspection detector into a
// single boolean signal plus context-menu suppression policy.
//
// The detector itself is treated as a capability: a probe function
// polled at a fixed interval. Once it reports suspicion the guard
// latches; there is no path back to the unsuspected state short of a
// fresh session.
package guard

import (
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/log"
)

// Probe inspects the environment once and reports whether an external
// inspector is suspected.
type Probe func() bool

// Options configures a Guard.
type Options struct {
	// OnSuspected is invoked exactly once, from the polling goroutine,
	// when the probe first reports suspicion.
	OnSuspected func()

	// PollInterval between probe invocations. Zero falls back to the
	// configured guard.poll_ms.
	PollInterval time.Duration

	// SuppressContextMenu marks right-click events over the session
	// surface as swallowed, independent of detection state.
	SuppressContextMenu bool

	// Probe overrides the built-in detector. Nil uses DefaultProbe.
	Probe Probe
}

// Guard polls a detector and latches on first suspicion.
type Guard struct {
	options Options

	mu        sync.Mutex
	stopCh    chan struct{}
	running   bool
	suspected bool
}

// New constructs a Guard without starting it.
func New(options Options) *Guard {
	if options.Probe == nil {
		options.Probe = DefaultProbe
	}
	if options.PollInterval <= 0 {
		options.PollInterval = time.Duration(viper.GetInt64(key.GuardPollMs)) * time.Millisecond
	}
	return &Guard{options: options}
}

// Start launches the polling loop. Idempotent; a latched guard does not
// restart.
func (g *Guard) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running || g.suspected {
		return
	}

	g.stopCh = make(chan struct{})
	g.running = true

	go g.poll(g.stopCh)
}

// Stop terminates the polling loop. Idempotent. The suspicion latch is
// unaffected.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running {
		return
	}

	close(g.stopCh)
	g.running = false
}

// Suspected reports whether the latch has fired.
func (g *Guard) Suspected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.suspected
}

// SuppressContextMenu reports whether right clicks over the session
// surface should be swallowed. Unconditional policy, independent of the
// detection state.
func (g *Guard) SuppressContextMenu() bool {
	return g.options.SuppressContextMenu
}

func (g *Guard) poll(stopCh chan struct{}) {
	ticker := time.NewTicker(g.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !g.options.Probe() {
				continue
			}

			g.mu.Lock()
			if g.suspected {
				g.mu.Unlock()
				return
			}
			g.suspected = true
			g.running = false
			g.mu.Unlock()

			log.Warn("inspection suspected, blocking session")
			if g.options.OnSuspected != nil {
				g.options.OnSuspected()
			}
			return
		}
	}
}
