// Package widget defines the opaque playback capability the session drives.
// The architecture supports multiple backends, with the primary implementation targeting 'mpv' via its JSON-IPC interface.
package widget

// State is the playback state reported by the widget.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "idle"
	}
}

// Events carries the notification callbacks a consumer registers with a
// widget's listener. Nil callbacks are skipped.
type Events struct {
	// OnReady fires once the widget has loaded media and can answer
	// duration/volume queries.
	OnReady func()

	// OnStateChange fires on every authoritative playback transition.
	OnStateChange func(state State)

	// OnFullscreenChange fires whenever the widget's window enters or
	// leaves fullscreen, regardless of who requested it.
	OnFullscreenChange func(fullscreen bool)
}

// Widget encapsulates the required capabilities of a playback backend.
type Widget interface {
	// PlayVideo resumes or starts playback.
	PlayVideo() error

	// PauseVideo suspends playback.
	PauseVideo() error

	// SeekTo transitions playback to an absolute timestamp in seconds.
	// allowSeekAhead permits seeking into not-yet-buffered regions.
	SeekTo(seconds float64, allowSeekAhead bool) error

	// GetCurrentTime retrieves the current absolute playback position in seconds.
	GetCurrentTime() (float64, error)

	// GetDuration retrieves the total temporal length of the active media in seconds.
	// Live streams report zero.
	GetDuration() (float64, error)

	// SetVolume pushes a volume level in percent [0,100].
	SetVolume(volume int) error

	// GetVolume retrieves the current volume level in percent.
	GetVolume() (int, error)

	// Mute silences output without touching the volume level.
	Mute() error

	// UnMute restores output at the current volume level.
	UnMute() error

	// IsMuted retrieves the current mute flag.
	IsMuted() (bool, error)

	// RequestFullscreen asks the widget's window to enter fullscreen.
	// The request is asynchronous and may be refused; the outcome is
	// only observable through the fullscreen-change notification.
	RequestFullscreen() error

	// ExitFullscreen asks the widget's window to leave fullscreen.
	ExitFullscreen() error

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool

	// Close terminates the playback engine and releases all associated system resources.
	Close() error

	// Socket retrieves the identifier for the Inter-Process Communication (IPC) channel.
	Socket() string

	// Wait returns a channel that is closed when the playback process terminates.
	Wait() <-chan struct{}
}
