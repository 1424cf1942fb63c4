package session

import (
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/widget"
)

func init() {
	// Short windows keep the timer tests fast.
	viper.Set(key.PlayerIdleHideMs, 40)
	viper.Set(key.PlayerSamplerMs, 10)
	viper.Set(key.PlayerRewindSeconds, 10)
	viper.Set(key.PlayerUnmuteVolume, 50)
}

func attached(duration float64) (*Session, *fakeWidget) {
	w := newFakeWidget(duration)
	s := New("vid-1", nil)
	s.Attach(w)
	return s, w
}

func TestAttach(t *testing.T) {
	Convey("Given a finite stream", t, func() {
		s, _ := attached(300)

		Convey("Attach classifies it and seeds volume", func() {
			snap := s.Snapshot()
			So(snap.StreamKind, ShouldEqual, Finite)
			So(snap.Duration, ShouldEqual, 300)
			So(snap.Volume, ShouldEqual, 100)
			So(snap.Muted, ShouldBeFalse)
			So(snap.ControlsVisible, ShouldBeTrue)
		})
	})

	Convey("Given a reported duration of exactly zero", t, func() {
		s, w := attached(0)

		Convey("The stream is live", func() {
			So(s.Snapshot().StreamKind, ShouldEqual, Live)
		})

		Convey("Rewind and seek are no-ops", func() {
			s.Rewind()
			s.SeekToFraction(0.5)
			So(w.Calls(), ShouldNotContain, "seek")
		})
	})
}

func TestTransitions(t *testing.T) {
	Convey("Given an attached finite session", t, func() {
		s, _ := attached(300)

		Convey("Playing hides controls and clears the end screen", func() {
			s.HandleStateChange(widget.StatePlaying)
			snap := s.Snapshot()
			So(snap.Playback, ShouldEqual, Playing)
			So(snap.ControlsVisible, ShouldBeFalse)
			So(snap.EndScreenVisible, ShouldBeFalse)
		})

		Convey("Playing then Paused shows controls", func() {
			s.HandleStateChange(widget.StatePlaying)
			s.HandleStateChange(widget.StatePaused)
			snap := s.Snapshot()
			So(snap.Playback, ShouldEqual, Paused)
			So(snap.ControlsVisible, ShouldBeTrue)
			So(snap.EndScreenVisible, ShouldBeFalse)
		})

		Convey("Ended raises the end screen and hides controls", func() {
			s.HandleStateChange(widget.StateEnded)
			snap := s.Snapshot()
			So(snap.EndScreenVisible, ShouldBeTrue)
			So(snap.ControlsVisible, ShouldBeFalse)
		})
	})

	Convey("Given a live session", t, func() {
		s, _ := attached(0)

		Convey("Playing leaves controls latched visible", func() {
			s.HandleStateChange(widget.StatePlaying)
			So(s.Snapshot().ControlsVisible, ShouldBeTrue)
		})
	})
}

func TestReplay(t *testing.T) {
	Convey("Given a session that reached the end", t, func() {
		s, w := attached(300)
		s.HandleStateChange(widget.StateEnded)

		Convey("Replay seeks to zero before requesting play", func() {
			s.Replay()

			calls := w.Calls()
			seekAt := lo.IndexOf(calls, "seek")
			playAt := lo.IndexOf(calls, "play")
			So(seekAt, ShouldBeGreaterThanOrEqualTo, 0)
			So(playAt, ShouldBeGreaterThan, seekAt)

			snap := s.Snapshot()
			So(snap.EndScreenVisible, ShouldBeFalse)
			So(snap.Position, ShouldEqual, 0)
		})
	})
}

func TestOptimisticToggle(t *testing.T) {
	Convey("Given an attached paused session", t, func() {
		s, w := attached(300)
		s.HandleStateChange(widget.StatePaused)

		Convey("TogglePlayPause optimistically flips to playing", func() {
			s.TogglePlayPause()
			So(s.Snapshot().Playback, ShouldEqual, Playing)
			So(w.Calls(), ShouldContain, "play")

			Convey("and the next authoritative notification wins", func() {
				s.HandleStateChange(widget.StatePaused)
				So(s.Snapshot().Playback, ShouldEqual, Paused)
			})
		})

		Convey("Toggling twice requests pause after play", func() {
			s.TogglePlayPause()
			s.TogglePlayPause()
			So(w.Calls(), ShouldResemble, []string{"play", "pause"})
			So(s.Snapshot().Playback, ShouldEqual, Paused)
		})
	})
}

func TestRewind(t *testing.T) {
	Convey("Given a finite session mid-playback", t, func() {
		s, w := attached(300)
		w.mu.Lock()
		w.position = 25
		w.mu.Unlock()
		s.HandleStateChange(widget.StatePlaying)
		time.Sleep(30 * time.Millisecond) // let the sampler observe the position
		s.HandleStateChange(widget.StatePaused)

		Convey("Rewind seeks back by the configured window", func() {
			s.Rewind()
			So(s.Snapshot().Position, ShouldEqual, 15)
		})

		Convey("Rewind floors at zero near the start", func() {
			s.SeekToFraction(4.0 / 300.0)
			s.Rewind()
			So(s.Snapshot().Position, ShouldEqual, 0)
		})
	})
}

func TestSeekToFraction(t *testing.T) {
	Convey("Given a finite session of 300s", t, func() {
		s, w := attached(300)

		Convey("Fractions map to absolute positions", func() {
			s.SeekToFraction(0.5)
			So(s.Snapshot().Position, ShouldEqual, 150)
			So(w.Calls(), ShouldContain, "seek")
		})

		Convey("Out-of-range fractions clamp", func() {
			s.SeekToFraction(1.7)
			So(s.Snapshot().Position, ShouldEqual, 300)

			s.SeekToFraction(-0.3)
			So(s.Snapshot().Position, ShouldEqual, 0)
		})
	})
}

func TestFraction(t *testing.T) {
	Convey("Fraction is clamp((x-L)/W, 0, 1)", t, func() {
		So(Fraction(15, 10, 20), ShouldEqual, 0.25)
		So(Fraction(10, 10, 20), ShouldEqual, 0)
		So(Fraction(30, 10, 20), ShouldEqual, 1)
		So(Fraction(5, 10, 20), ShouldEqual, 0)
		So(Fraction(40, 10, 20), ShouldEqual, 1)

		Convey("A degenerate bar yields zero", func() {
			So(Fraction(5, 10, 0), ShouldEqual, 0)
		})
	})
}

func TestVolumeAndMute(t *testing.T) {
	Convey("Given an attached session", t, func() {
		s, w := attached(300)

		Convey("SetVolume clamps and pushes", func() {
			s.SetVolume(120)
			So(s.Snapshot().Volume, ShouldEqual, 100)

			s.SetVolume(-3)
			So(s.Snapshot().Volume, ShouldEqual, 0)
		})

		Convey("A nonzero SetVolume while muted unmutes", func() {
			s.ToggleMute()
			So(s.Snapshot().Muted, ShouldBeTrue)

			s.SetVolume(30)
			snap := s.Snapshot()
			So(snap.Muted, ShouldBeFalse)
			So(snap.Volume, ShouldEqual, 30)
			So(w.Calls(), ShouldContain, "unmute")
		})

		Convey("Muting at volume zero, then unmuting, restores the default", func() {
			s.SetVolume(0)
			s.ToggleMute()
			snap := s.Snapshot()
			So(snap.Muted, ShouldBeTrue)
			So(snap.Volume, ShouldEqual, 0)

			s.ToggleMute()
			snap = s.Snapshot()
			So(snap.Muted, ShouldBeFalse)
			So(snap.Volume, ShouldEqual, 50)
			So(w.volume, ShouldEqual, 50)
		})
	})
}

func TestFullscreen(t *testing.T) {
	Convey("Given an attached session", t, func() {
		s, w := attached(300)

		Convey("ToggleFullscreen only issues a request", func() {
			s.ToggleFullscreen()
			So(w.Calls(), ShouldContain, "requestFullscreen")
			So(s.Snapshot().Fullscreen, ShouldBeFalse)

			Convey("the flag moves on the change notification", func() {
				s.HandleFullscreenChange(true)
				So(s.Snapshot().Fullscreen, ShouldBeTrue)

				Convey("and the next toggle requests exit", func() {
					s.ToggleFullscreen()
					So(w.Calls(), ShouldContain, "exitFullscreen")
				})
			})
		})

		Convey("Leaving fullscreen hides the exit button", func() {
			s.HandleFullscreenChange(true)
			s.NotifyActivity()
			So(s.Snapshot().FullscreenExitButtonVisible, ShouldBeTrue)

			s.HandleFullscreenChange(false)
			So(s.Snapshot().FullscreenExitButtonVisible, ShouldBeFalse)
		})
	})
}

func TestInspection(t *testing.T) {
	Convey("Given an attached playing session", t, func() {
		s, w := attached(300)
		s.HandleStateChange(widget.StatePlaying)

		Convey("SuspectInspection force-pauses and latches", func() {
			s.SuspectInspection()
			snap := s.Snapshot()
			So(snap.InspectionSuspected, ShouldBeTrue)
			So(snap.Playback, ShouldNotEqual, Playing)
			So(w.Calls(), ShouldContain, "pause")

			Convey("and every further command is inert", func() {
				before := len(w.Calls())
				s.TogglePlayPause()
				s.Rewind()
				s.SeekToFraction(0.5)
				s.SetVolume(10)
				s.ToggleMute()
				s.ToggleFullscreen()
				s.Replay()
				So(w.Calls(), ShouldHaveLength, before)
			})

			Convey("and notifications no longer mutate state", func() {
				s.HandleStateChange(widget.StatePlaying)
				So(s.Snapshot().Playback, ShouldNotEqual, Playing)
			})
		})
	})
}

func TestLifecycleGuards(t *testing.T) {
	Convey("Commands before attach are silent no-ops", t, func() {
		s := New("vid-1", nil)
		So(func() {
			s.TogglePlayPause()
			s.Rewind()
			s.SeekToFraction(0.5)
			s.SetVolume(10)
			s.ToggleMute()
			s.Replay()
			s.ToggleFullscreen()
		}, ShouldNotPanic)
		So(s.Snapshot().Playback, ShouldEqual, Idle)
	})

	Convey("Commands after teardown are silent no-ops", t, func() {
		s, w := attached(300)
		s.Teardown()

		before := len(w.Calls())
		s.TogglePlayPause()
		s.NotifyActivity()
		s.HandleStateChange(widget.StatePlaying)
		So(w.Calls(), ShouldHaveLength, before)
	})
}
