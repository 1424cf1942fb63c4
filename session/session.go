// Package session owns the playback-session state machine: the single
// source of truth deriving player-visible state from widget, timer and
// pointer events, and driving commands back into the playback widget.
package session

import (
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/log"
	"github.com/vizor-cli/vizor/util"
	"github.com/vizor-cli/vizor/widget"
)

// Session is the lifetime-bound controller for one video's playback
// view. All mutation happens under one mutex; the OnChange callback is
// always invoked after the lock is released, with an immutable copy.
type Session struct {
	mu   sync.Mutex
	snap Snapshot

	w        widget.Widget // nil until Attach
	torndown bool

	// pending marks the current Playback value as an optimistic guess
	// made at command time; the next authoritative state change always
	// wins and clears it.
	pending mo.Option[PlaybackState]

	sampler sampler
	idle    idleTimer

	onChange func(Snapshot)

	idleDelay     time.Duration
	samplerPeriod time.Duration
	rewindBy      float64
	unmuteVolume  int
}

// New creates a detached session for the given video. Commands are
// silent no-ops until Attach.
func New(videoID string, onChange func(Snapshot)) *Session {
	return &Session{
		snap: Snapshot{
			VideoID:         videoID,
			ControlsVisible: true,
		},
		onChange:      onChange,
		idleDelay:     time.Duration(viper.GetInt64(key.PlayerIdleHideMs)) * time.Millisecond,
		samplerPeriod: time.Duration(viper.GetInt64(key.PlayerSamplerMs)) * time.Millisecond,
		rewindBy:      float64(viper.GetInt64(key.PlayerRewindSeconds)),
		unmuteVolume:  viper.GetInt(key.PlayerUnmuteVolume),
	}
}

// Snapshot returns a copy of the current derived state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Attach binds a ready widget to the session: classifies the stream
// from its reported duration, seeds volume and mute state, and latches
// controls visible for live streams.
func (s *Session) Attach(w widget.Widget) {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected {
		s.mu.Unlock()
		return
	}
	s.w = w

	duration, err := w.GetDuration()
	if err != nil {
		log.Warnf("attach: duration query: %s", err)
		duration = 0
	}
	if duration == 0 {
		s.snap.StreamKind = Live
	} else {
		s.snap.StreamKind = Finite
		s.snap.Duration = duration
	}

	if volume, err := w.GetVolume(); err == nil {
		s.snap.Volume = volume
	}
	if muted, err := w.IsMuted(); err == nil {
		s.snap.Muted = muted
	}

	s.snap.ControlsVisible = true
	s.unlockAndEmit()
}

// HandleStateChange applies an authoritative widget transition. It
// reconciles any optimistic guess, drives the transition table, and
// keeps the position sampler active only while Playing.
func (s *Session) HandleStateChange(state widget.State) {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected {
		s.mu.Unlock()
		return
	}

	authoritative := playbackOf(state)
	if guess, ok := s.pending.Get(); ok && guess != authoritative {
		log.Debugf("optimistic %s reconciled to %s", guess, authoritative)
	}
	s.pending = mo.None[PlaybackState]()
	s.snap.Playback = authoritative

	switch s.snap.Playback {
	case Playing:
		s.snap.EndScreenVisible = false
		if s.snap.StreamKind != Live {
			// Controls hide while actively playing; pointer activity
			// or a pause brings them back.
			s.snap.ControlsVisible = false
		}
		s.sampler.Start(s.samplerPeriod, s.samplePosition)
	case Paused:
		s.snap.ControlsVisible = true
		s.idle.Cancel()
		s.sampler.Stop()
	case Ended:
		s.snap.EndScreenVisible = true
		s.snap.ControlsVisible = false
		s.idle.Cancel()
		s.sampler.Stop()
	default:
		s.sampler.Stop()
	}

	s.unlockAndEmit()
}

// HandleFullscreenChange applies the normalized fullscreen-change
// notification. This is the only place the fullscreen flag moves.
func (s *Session) HandleFullscreenChange(fullscreen bool) {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected {
		s.mu.Unlock()
		return
	}

	s.snap.Fullscreen = fullscreen
	if !fullscreen {
		s.snap.FullscreenExitButtonVisible = false
	}
	s.unlockAndEmit()
}

// NotifyActivity reports pointer movement over the session surface:
// controls come back and the auto-hide window restarts. Live streams
// keep controls latched visible with no hide scheduled.
func (s *Session) NotifyActivity() {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected {
		s.mu.Unlock()
		return
	}

	s.snap.ControlsVisible = true
	if s.snap.Fullscreen {
		s.snap.FullscreenExitButtonVisible = true
	}

	if s.snap.StreamKind == Live {
		s.idle.Cancel()
	} else {
		s.idle.Bump(s.idleDelay, s.hideControls)
	}

	s.unlockAndEmit()
}

// hideControls is the idle timer's fire path.
func (s *Session) hideControls() {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected || s.snap.StreamKind == Live {
		s.mu.Unlock()
		return
	}

	s.snap.ControlsVisible = false
	s.snap.FullscreenExitButtonVisible = false
	s.unlockAndEmit()
}

// TogglePlayPause requests the opposite of the current playback state,
// optimistically flipping the snapshot. The next authoritative state
// change reconciles the guess.
func (s *Session) TogglePlayPause() {
	s.mu.Lock()
	if !s.commandable() {
		s.mu.Unlock()
		return
	}

	if s.snap.Playback == Playing {
		util.Ignore(s.w.PauseVideo)
		s.snap.Playback = Paused
		s.pending = mo.Some(Paused)
	} else {
		util.Ignore(s.w.PlayVideo)
		s.snap.Playback = Playing
		s.pending = mo.Some(Playing)
	}

	s.unlockAndEmit()
}

// Rewind requests a seek back by the configured number of seconds,
// floored at zero. No-op for live streams.
func (s *Session) Rewind() {
	s.mu.Lock()
	if !s.commandable() || s.snap.StreamKind == Live {
		s.mu.Unlock()
		return
	}

	target := util.Max(0, s.snap.Position-s.rewindBy)
	_ = s.w.SeekTo(target, true)
	s.snap.Position = target
	s.unlockAndEmit()
}

// SeekToFraction requests a seek to fraction*duration. The fraction is
// clamped to [0,1]; see Fraction for the canonical pointer-to-fraction
// mapping. No-op for live streams and before attach.
func (s *Session) SeekToFraction(fraction float64) {
	s.mu.Lock()
	if !s.commandable() || s.snap.StreamKind == Live {
		s.mu.Unlock()
		return
	}

	fraction = util.Clamp(fraction, 0, 1)
	target := fraction * s.snap.Duration
	_ = s.w.SeekTo(target, true)
	s.snap.Position = target
	s.unlockAndEmit()
}

// SetVolume clamps and pushes a volume level. A nonzero level while
// muted also unmutes.
func (s *Session) SetVolume(volume int) {
	s.mu.Lock()
	if !s.commandable() {
		s.mu.Unlock()
		return
	}

	volume = util.Clamp(volume, 0, 100)
	_ = s.w.SetVolume(volume)
	s.snap.Volume = volume

	if volume > 0 && s.snap.Muted {
		util.Ignore(s.w.UnMute)
		s.snap.Muted = false
	}

	s.unlockAndEmit()
}

// ToggleMute flips the mute flag. Unmuting at volume zero restores the
// configured default level; muting leaves the volume value untouched.
func (s *Session) ToggleMute() {
	s.mu.Lock()
	if !s.commandable() {
		s.mu.Unlock()
		return
	}

	if s.snap.Muted {
		util.Ignore(s.w.UnMute)
		s.snap.Muted = false
		if s.snap.Volume == 0 {
			_ = s.w.SetVolume(s.unmuteVolume)
			s.snap.Volume = s.unmuteVolume
		}
	} else {
		util.Ignore(s.w.Mute)
		s.snap.Muted = true
	}

	s.unlockAndEmit()
}

// Replay restarts playback from the beginning: seek to zero first, then
// a play request, then the end screen clears.
func (s *Session) Replay() {
	s.mu.Lock()
	if !s.commandable() {
		s.mu.Unlock()
		return
	}

	_ = s.w.SeekTo(0, true)
	util.Ignore(s.w.PlayVideo)

	s.snap.Position = 0
	s.snap.EndScreenVisible = false
	s.snap.Playback = Playing
	s.pending = mo.Some(Playing)

	s.unlockAndEmit()
}

// ToggleFullscreen issues a fullscreen request in the direction opposite
// the current flag. The flag itself only moves via the change
// notification; a denied request simply never produces one.
func (s *Session) ToggleFullscreen() {
	s.mu.Lock()
	if !s.commandable() {
		s.mu.Unlock()
		return
	}

	if s.snap.Fullscreen {
		util.Ignore(s.w.ExitFullscreen)
	} else {
		util.Ignore(s.w.RequestFullscreen)
	}
	s.mu.Unlock()
}

// SuspectInspection latches the inspection flag, force-pauses playback
// if a widget is attached, and renders every further command inert.
// There is no path back; a fresh session is the only reset.
func (s *Session) SuspectInspection() {
	s.mu.Lock()
	if s.torndown || s.snap.InspectionSuspected {
		s.mu.Unlock()
		return
	}

	s.snap.InspectionSuspected = true
	if s.w != nil {
		util.Ignore(s.w.PauseVideo)
	}
	if s.snap.Playback == Playing {
		s.snap.Playback = Paused
	}
	s.pending = mo.None[PlaybackState]()
	s.sampler.Stop()
	s.idle.Cancel()

	s.unlockAndEmit()
}

// Teardown releases every timer and detaches the widget handle. The
// session is inert afterwards; no state carries over to a successor.
func (s *Session) Teardown() {
	s.mu.Lock()
	if s.torndown {
		s.mu.Unlock()
		return
	}

	s.torndown = true
	s.sampler.Stop()
	s.idle.Cancel()
	s.w = nil
	s.pending = mo.None[PlaybackState]()
	s.mu.Unlock()
}

// samplePosition is the sampler's poll path: pull current time and
// duration from the widget and fold them into the snapshot.
func (s *Session) samplePosition() {
	s.mu.Lock()
	if s.torndown || s.w == nil {
		s.mu.Unlock()
		return
	}
	w := s.w
	s.mu.Unlock()

	position, posErr := w.GetCurrentTime()
	duration, durErr := w.GetDuration()

	s.mu.Lock()
	if s.torndown {
		s.mu.Unlock()
		return
	}

	// Duration is monotonic non-decreasing once known.
	if durErr == nil && duration > s.snap.Duration {
		s.snap.Duration = duration
	}

	if posErr == nil {
		if s.snap.StreamKind == Finite && s.snap.Duration > 0 {
			position = util.Clamp(position, 0, s.snap.Duration)
		}
		s.snap.Position = util.Max(0.0, position)
	}

	s.unlockAndEmit()
}

// commandable reports whether a user command may act. Callers hold the
// lock.
func (s *Session) commandable() bool {
	return !s.torndown && s.w != nil && !s.snap.InspectionSuspected
}

// unlockAndEmit copies the snapshot, releases the lock, and delivers
// the copy to the OnChange callback. Callers hold the lock.
func (s *Session) unlockAndEmit() {
	snap := s.snap
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

// Fraction maps a pointer position over a progress bar to a seek
// fraction: clamp((clickX-barLeft)/barWidth, 0, 1). A degenerate bar
// width yields zero.
func Fraction(clickX, barLeft, barWidth int) float64 {
	if barWidth <= 0 {
		return 0
	}
	return util.Clamp(float64(clickX-barLeft)/float64(barWidth), 0, 1)
}
