package guard

import (
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGuard(t *testing.T) {
	Convey("Given a guard with a benign probe", t, func() {
		var fired atomic.Int32
		g := New(Options{
			OnSuspected:  func() { fired.Add(1) },
			PollInterval: 5 * time.Millisecond,
			Probe:        func() bool { return false },
		})

		Convey("It never latches", func() {
			g.Start()
			time.Sleep(30 * time.Millisecond)
			g.Stop()

			So(g.Suspected(), ShouldBeFalse)
			So(fired.Load(), ShouldEqual, 0)
		})

		Convey("Start and Stop are idempotent", func() {
			g.Start()
			g.Start()
			g.Stop()
			g.Stop()
			So(g.Suspected(), ShouldBeFalse)
		})
	})

	Convey("Given a guard whose probe fires", t, func() {
		var fired atomic.Int32
		g := New(Options{
			OnSuspected:  func() { fired.Add(1) },
			PollInterval: 5 * time.Millisecond,
			Probe:        func() bool { return true },
		})

		Convey("It latches exactly once", func() {
			g.Start()
			time.Sleep(30 * time.Millisecond)

			So(g.Suspected(), ShouldBeTrue)
			So(fired.Load(), ShouldEqual, 1)

			Convey("and the latch survives a restart attempt", func() {
				g.Start()
				time.Sleep(20 * time.Millisecond)
				So(g.Suspected(), ShouldBeTrue)
				So(fired.Load(), ShouldEqual, 1)
			})
		})
	})

	Convey("Context-menu suppression is a static policy", t, func() {
		on := New(Options{SuppressContextMenu: true, Probe: func() bool { return false }})
		off := New(Options{Probe: func() bool { return false }})

		So(on.SuppressContextMenu(), ShouldBeTrue)
		So(off.SuppressContextMenu(), ShouldBeFalse)
	})
}
