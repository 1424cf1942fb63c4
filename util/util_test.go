package util

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(2, "video", "videos"), ShouldEqual, "2 videos")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFormatTime(t *testing.T) {
	Convey("FormatTime", t, func() {
		Convey("Should render minutes and seconds", func() {
			So(FormatTime(0), ShouldEqual, "00:00")
			So(FormatTime(9), ShouldEqual, "00:09")
			So(FormatTime(61), ShouldEqual, "01:01")
			So(FormatTime(599.9), ShouldEqual, "09:59")
		})
		Convey("Should include hours at or above one hour", func() {
			So(FormatTime(3600), ShouldEqual, "01:00:00")
			So(FormatTime(3661), ShouldEqual, "01:01:01")
			So(FormatTime(7325), ShouldEqual, "02:02:05")
		})
		Convey("Should sanitize invalid inputs", func() {
			So(FormatTime(math.NaN()), ShouldEqual, "00:00")
			So(FormatTime(math.Inf(1)), ShouldEqual, "00:00")
			So(FormatTime(-5), ShouldEqual, "00:00")
		})
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(0.5, 0.0, 1.0), ShouldEqual, 0.5)
		So(Clamp(-0.1, 0.0, 1.0), ShouldEqual, 0.0)
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		item := s.Pop()
		So(item, ShouldEqual, 2)
		item = s.Pop()
		So(item, ShouldEqual, 1)
		item = s.Pop()
		So(item, ShouldEqual, 0)
	})
}
