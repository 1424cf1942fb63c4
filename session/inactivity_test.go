package session

import (
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/key"
)

func TestIdleTimer(t *testing.T) {
	Convey("Given an idle timer", t, func() {
		var fired atomic.Int32
		timer := &idleTimer{}

		Convey("It fires once after the delay", func() {
			timer.Bump(20*time.Millisecond, func() { fired.Add(1) })
			time.Sleep(60 * time.Millisecond)
			So(fired.Load(), ShouldEqual, 1)
		})

		Convey("A second bump resets the window", func() {
			timer.Bump(40*time.Millisecond, func() { fired.Add(1) })
			time.Sleep(25 * time.Millisecond)
			timer.Bump(40*time.Millisecond, func() { fired.Add(1) })

			// The original deadline passes without a fire
			time.Sleep(25 * time.Millisecond)
			So(fired.Load(), ShouldEqual, 0)

			time.Sleep(40 * time.Millisecond)
			So(fired.Load(), ShouldEqual, 1)
		})

		Convey("Cancel discards the pending fire", func() {
			timer.Bump(20*time.Millisecond, func() { fired.Add(1) })
			timer.Cancel()
			time.Sleep(50 * time.Millisecond)
			So(fired.Load(), ShouldEqual, 0)

			Convey("and a repeated cancel is harmless", func() {
				So(timer.Cancel, ShouldNotPanic)
			})
		})
	})
}

func TestInactivityBehavior(t *testing.T) {
	Convey("Given an attached finite session", t, func() {
		s, _ := attached(300)
		delay := time.Duration(viper.GetInt64(key.PlayerIdleHideMs)) * time.Millisecond

		Convey("Activity shows controls, then the idle window hides them once", func() {
			s.NotifyActivity()
			So(s.Snapshot().ControlsVisible, ShouldBeTrue)

			time.Sleep(delay + 30*time.Millisecond)
			So(s.Snapshot().ControlsVisible, ShouldBeFalse)
		})

		Convey("Renewed activity before expiry resets the window", func() {
			s.NotifyActivity()
			time.Sleep(delay / 2)
			s.NotifyActivity()

			time.Sleep(delay/2 + 10*time.Millisecond)
			So(s.Snapshot().ControlsVisible, ShouldBeTrue)

			time.Sleep(delay)
			So(s.Snapshot().ControlsVisible, ShouldBeFalse)
		})

		Convey("Teardown cancels the pending hide", func() {
			s.NotifyActivity()
			s.Teardown()
			time.Sleep(delay + 30*time.Millisecond)
			So(s.Snapshot().ControlsVisible, ShouldBeTrue)
		})
	})

	Convey("Given a live session", t, func() {
		s, _ := attached(0)
		delay := time.Duration(viper.GetInt64(key.PlayerIdleHideMs)) * time.Millisecond

		Convey("Controls never decay", func() {
			s.NotifyActivity()
			time.Sleep(delay + 30*time.Millisecond)
			So(s.Snapshot().ControlsVisible, ShouldBeTrue)
		})
	})
}
