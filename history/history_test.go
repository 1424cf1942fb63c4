package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a catalog video", t, func() {
		video := catalog.Video{
			ID:           "vid-42",
			Title:        "Some Video",
			ThumbnailURL: "https://example.com/t.jpg",
		}

		Convey("When saving playback progress", func() {
			err := Save(video, 30, 120)

			Convey("Then the record is persisted", func() {
				So(err, ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved[video.ID], ShouldNotBeNil)
				So(saved[video.ID].Title, ShouldEqual, video.Title)
				So(saved[video.ID].WatchedPercentage, ShouldEqual, 25)
			})

			Convey("And a lower percentage never regresses the record", func() {
				So(Save(video, 6, 120), ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved[video.ID].WatchedPercentage, ShouldEqual, 25)
			})

			Convey("And a higher percentage advances it", func() {
				So(Save(video, 90, 120), ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved[video.ID].WatchedPercentage, ShouldEqual, 75)
			})

			Convey("And removing deletes it", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(Remove(saved[video.ID]), ShouldBeNil)

				saved, err = Get()
				So(err, ShouldBeNil)
				So(saved[video.ID], ShouldBeNil)
			})
		})

		Convey("A zero duration saves with zero percentage", func() {
			live := catalog.Video{ID: "live-1", Title: "Live"}
			So(Save(live, 500, 0), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved[live.ID].WatchedPercentage, ShouldEqual, 0)
		})
	})
}
