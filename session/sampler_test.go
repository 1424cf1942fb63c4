package session

import (
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vizor-cli/vizor/widget"
)

func TestSampler(t *testing.T) {
	Convey("Given a sampler", t, func() {
		var polls atomic.Int32
		smp := &sampler{}

		Convey("Start begins polling and Stop releases the ticker", func() {
			smp.Start(5*time.Millisecond, func() { polls.Add(1) })
			So(smp.Running(), ShouldBeTrue)

			time.Sleep(30 * time.Millisecond)
			So(polls.Load(), ShouldBeGreaterThan, 0)

			smp.Stop()
			So(smp.Running(), ShouldBeFalse)

			settled := polls.Load()
			time.Sleep(30 * time.Millisecond)
			So(polls.Load()-settled, ShouldBeLessThanOrEqualTo, 1)
		})

		Convey("Start is idempotent", func() {
			smp.Start(5*time.Millisecond, func() { polls.Add(1) })
			smp.Start(5*time.Millisecond, func() { polls.Add(1) })
			smp.Stop()

			Convey("and so is Stop", func() {
				So(smp.Stop, ShouldNotPanic)
			})
		})
	})
}

func TestSamplerDrivesPosition(t *testing.T) {
	Convey("Given an attached finite session", t, func() {
		s, w := attached(300)

		Convey("The sampler runs only while playing", func() {
			So(s.sampler.Running(), ShouldBeFalse)

			s.HandleStateChange(widget.StatePlaying)
			So(s.sampler.Running(), ShouldBeTrue)

			w.mu.Lock()
			w.position = 42
			w.mu.Unlock()
			time.Sleep(40 * time.Millisecond)
			So(s.Snapshot().Position, ShouldEqual, 42)

			s.HandleStateChange(widget.StatePaused)
			So(s.sampler.Running(), ShouldBeFalse)
		})

		Convey("Positions beyond the duration clamp", func() {
			s.HandleStateChange(widget.StatePlaying)
			w.mu.Lock()
			w.position = 9999
			w.mu.Unlock()
			time.Sleep(40 * time.Millisecond)

			snap := s.Snapshot()
			So(snap.Position, ShouldEqual, snap.Duration)
			s.Teardown()
		})
	})
}
