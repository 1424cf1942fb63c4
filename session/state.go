package session

import "github.com/vizor-cli/vizor/widget"

// PlaybackState mirrors the widget's reported playback state. It is the
// authoritative source of truth for every derived flag in the snapshot.
type PlaybackState int

const (
	Idle PlaybackState = iota
	Playing
	Paused
	Ended
)

func (p PlaybackState) String() string {
	switch p {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// StreamKind classifies the stream once at attach time. A reported
// duration of exactly zero means Live; the classification is immutable
// for the session's lifetime.
type StreamKind int

const (
	Unknown StreamKind = iota
	Finite
	Live
)

func (k StreamKind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Live:
		return "live"
	default:
		return "unknown"
	}
}

// Snapshot is the session's complete derived state as one immutable
// value. Presentation renders snapshots and nothing else.
type Snapshot struct {
	VideoID    string
	Playback   PlaybackState
	StreamKind StreamKind

	// Position and Duration are sampled, in seconds. For finite streams
	// Position stays within [0, Duration] and Duration never decreases
	// once known.
	Position float64
	Duration float64

	Volume int // percent [0,100]
	Muted  bool

	ControlsVisible             bool
	FullscreenExitButtonVisible bool
	EndScreenVisible            bool
	Fullscreen                  bool
	InspectionSuspected         bool
}

func playbackOf(state widget.State) PlaybackState {
	switch state {
	case widget.StatePlaying:
		return Playing
	case widget.StatePaused:
		return Paused
	case widget.StateEnded:
		return Ended
	default:
		return Idle
	}
}
