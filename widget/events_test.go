package widget

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// recorder collects the callbacks a listener fires.
type recorder struct {
	ready      int
	states     []State
	fullscreen []bool
}

func newRecordedListener() (*Listener, *recorder) {
	rec := &recorder{}
	l := NewListener("", Events{
		OnReady:            func() { rec.ready++ },
		OnStateChange:      func(s State) { rec.states = append(rec.states, s) },
		OnFullscreenChange: func(fs bool) { rec.fullscreen = append(rec.fullscreen, fs) },
	})
	return l, rec
}

func propertyChange(name string, data interface{}) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"event": "property-change",
		"name":  name,
		"data":  data,
	})
	return string(payload)
}

func TestListenerDispatch(t *testing.T) {
	Convey("Given a listener with recorded callbacks", t, func() {
		l, rec := newRecordedListener()

		Convey("Readiness fires once, after file-loaded", func() {
			l.processEvent(propertyChange("pause", true))
			So(rec.ready, ShouldEqual, 0)

			l.processEvent(`{"event":"file-loaded"}`)
			So(rec.ready, ShouldEqual, 1)

			l.processEvent(`{"event":"file-loaded"}`)
			So(rec.ready, ShouldEqual, 1)
		})

		Convey("Pause property drives playing/paused transitions", func() {
			l.processEvent(propertyChange("pause", false))
			l.processEvent(propertyChange("pause", true))
			So(rec.states, ShouldResemble, []State{StatePlaying, StatePaused})
		})

		Convey("Duplicate property values do not re-fire", func() {
			l.processEvent(propertyChange("pause", false))
			l.processEvent(propertyChange("pause", false))
			So(rec.states, ShouldResemble, []State{StatePlaying})
		})

		Convey("End of file wins over the pause flag", func() {
			l.processEvent(propertyChange("pause", false))
			l.processEvent(propertyChange("eof-reached", true))
			So(rec.states, ShouldResemble, []State{StatePlaying, StateEnded})

			Convey("and replay transitions back to playing", func() {
				l.processEvent(propertyChange("eof-reached", false))
				So(rec.states[len(rec.states)-1], ShouldEqual, StatePlaying)
			})
		})

		Convey("Unavailable eof-reached is ignored", func() {
			l.processEvent(propertyChange("eof-reached", nil))
			So(rec.states, ShouldBeEmpty)
		})

		Convey("All fullscreen aliases funnel into one signal", func() {
			l.processEvent(propertyChange("fullscreen", true))
			So(rec.fullscreen, ShouldResemble, []bool{true})

			// Same value under a different alias is a duplicate
			l.processEvent(propertyChange("window-fullscreen", true))
			So(rec.fullscreen, ShouldResemble, []bool{true})

			l.processEvent(propertyChange("fs", false))
			So(rec.fullscreen, ShouldResemble, []bool{true, false})

			l.processEvent(propertyChange("fullscreen-active", true))
			So(rec.fullscreen, ShouldResemble, []bool{true, false, true})
		})

		Convey("Unparseable lines are skipped", func() {
			l.processEvent("not json")
			So(rec.states, ShouldBeEmpty)
			So(rec.fullscreen, ShouldBeEmpty)
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Accepts a plain URL", func() {
			url, err := sanitizeMediaTarget("https://example.com/v.mp4")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://example.com/v.mp4")
		})
		Convey("Rejects flag-shaped input", func() {
			_, err := sanitizeMediaTarget("--ytdl-raw-options=...")
			So(err, ShouldNotBeNil)
		})
		Convey("Rejects empty input", func() {
			_, err := sanitizeMediaTarget("  ")
			So(err, ShouldNotBeNil)
		})
		Convey("Rejects control characters", func() {
			_, err := sanitizeMediaTarget("https://a\nb")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle(" a\tb\nc "), ShouldEqual, "a b c")
	})
}
