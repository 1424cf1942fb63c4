package widget

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/vizor-cli/vizor/log"
)

// fullscreenAliases are the property names under which different mpv
// builds and window backends report fullscreen transitions. They are
// observed together and funneled into the single OnFullscreenChange
// signal; the duplication is a backend-compatibility artifact.
var fullscreenAliases = []string{
	"fullscreen",
	"fs",
	"window-fullscreen",
	"fullscreen-active",
}

// Listener provides real-time mpv notifications via observe_property,
// translated into the Events callbacks.
type Listener struct {
	socketPath string
	conn       net.Conn
	events     Events
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool

	// dispatch bookkeeping, only touched from the read loop
	readyFired bool
	loaded     bool
	ended      bool
	paused     bool
	haveState  bool
	lastState  State
	fullscreen bool
	haveFS     bool
}

// NewListener creates a listener for the given socket.
func NewListener(socketPath string, events Events) *Listener {
	return &Listener{
		socketPath: socketPath,
		events:     events,
		stopCh:     make(chan struct{}),
	}
}

// Start subscribes to the observed properties and begins the read loop.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listening {
		return nil
	}

	properties := []string{"pause", "eof-reached"}
	properties = append(properties, fullscreenAliases...)

	for id, name := range properties {
		_, err := doSendCommand(l.socketPath, []interface{}{"observe_property", id + 1, name})
		if err != nil {
			// Alias properties are not present on every build; only the
			// canonical ones are mandatory.
			if isFullscreenAlias(name) {
				continue
			}
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	conn, err := net.Dial("unix", l.socketPath)
	if err != nil {
		return fmt.Errorf("listener connect: %w", err)
	}
	l.conn = conn
	l.listening = true

	go l.readLoop()

	log.Infof("mpv listener started on %s", l.socketPath)
	return nil
}

// Stop terminates the listener.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.listening {
		return
	}

	close(l.stopCh)
	if l.conn != nil {
		l.conn.Close()
	}
	l.listening = false
}

// readLoop continuously reads newline-delimited JSON events from the
// persistent mpv connection.
func (l *Listener) readLoop() {
	defer func() {
		l.mu.Lock()
		l.listening = false
		l.mu.Unlock()
	}()

	buf := make([]byte, 4096)
	var remainder []byte

	for {
		select {
		case <-l.stopCh:
			return
		default:
		}

		// Set read deadline to avoid blocking forever
		if err := l.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		n, err := l.conn.Read(buf)
		if err != nil {
			if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
				continue // timeout is normal, keep listening
			}
			log.Warnf("listener read error: %v", err)
			return
		}

		data := append(remainder, buf[:n]...)
		remainder = nil

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Last incomplete line goes to remainder for next read
			if i == len(lines)-1 && !strings.HasSuffix(string(data), "\n") {
				remainder = []byte(line)
				continue
			}

			l.processEvent(line)
		}
	}
}

// processEvent parses and dispatches a single mpv event JSON line.
func (l *Listener) processEvent(line string) {
	var event map[string]interface{}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		return // Skip unparseable lines
	}

	eventType, ok := event["event"].(string)
	if !ok {
		return
	}

	switch eventType {
	case "property-change":
		name, _ := event["name"].(string)
		if name != "" {
			l.dispatch(name, event["data"])
		}
	case "file-loaded":
		l.loaded = true
		l.fireReady()
	}
}

// dispatch folds a property change into the derived playback state and
// invokes the registered callbacks on actual transitions.
func (l *Listener) dispatch(name string, data interface{}) {
	if isFullscreenAlias(name) {
		active, ok := data.(bool)
		if !ok {
			return
		}
		if l.haveFS && active == l.fullscreen {
			return
		}
		l.haveFS = true
		l.fullscreen = active
		if l.events.OnFullscreenChange != nil {
			l.events.OnFullscreenChange(active)
		}
		return
	}

	switch name {
	case "pause":
		paused, ok := data.(bool)
		if !ok {
			return
		}
		l.paused = paused
		l.fireReady()
		l.fireState()
	case "eof-reached":
		// The property is unavailable (nil) while nothing is loaded.
		ended, ok := data.(bool)
		if !ok {
			return
		}
		l.ended = ended
		l.fireState()
	}
}

// fireReady emits OnReady exactly once, after media has loaded.
func (l *Listener) fireReady() {
	if l.readyFired || !l.loaded {
		return
	}
	l.readyFired = true
	if l.events.OnReady != nil {
		l.events.OnReady()
	}
}

// fireState emits OnStateChange when the derived state actually moves.
func (l *Listener) fireState() {
	state := StatePlaying
	switch {
	case l.ended:
		state = StateEnded
	case l.paused:
		state = StatePaused
	}

	if l.haveState && state == l.lastState {
		return
	}
	l.haveState = true
	l.lastState = state

	if l.events.OnStateChange != nil {
		l.events.OnStateChange(state)
	}
}

func isFullscreenAlias(name string) bool {
	for _, alias := range fullscreenAliases {
		if name == alias {
			return true
		}
	}
	return false
}
