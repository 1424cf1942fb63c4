package catalog

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestList(t *testing.T) {
	Convey("Given no catalog override on disk", t, func() {
		filesystem.SetMemMapFs()

		Convey("List returns the built-in entries", func() {
			So(List(), ShouldResemble, builtin)
		})
	})

	Convey("Given a catalog.json override", t, func() {
		filesystem.SetMemMapFs()
		override := []Video{{ID: "abc123", Title: "Custom", ThumbnailURL: "https://example.com/t.jpg"}}
		contents := lo.Must(json.Marshal(override))
		So(filesystem.API().WriteFile(where.Catalog(), contents, 0655), ShouldBeNil)

		Convey("List returns the override", func() {
			So(List(), ShouldResemble, override)
		})
	})

	Convey("Given a malformed catalog.json", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile(where.Catalog(), []byte("not json"), 0655), ShouldBeNil)

		Convey("List falls back to the built-in entries", func() {
			So(List(), ShouldResemble, builtin)
		})
	})
}

func TestGet(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		filesystem.SetMemMapFs()

		Convey("Get finds an entry by exact id", func() {
			video, err := Get(builtin[0].ID)
			So(err, ShouldBeNil)
			So(video, ShouldResemble, builtin[0])
		})

		Convey("Get rejects an unknown id", func() {
			_, err := Get("nope")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		filesystem.SetMemMapFs()

		Convey("Closest resolves a misspelled title", func() {
			video := Closest("Big Buk Buny")
			So(video.IsPresent(), ShouldBeTrue)
			So(video.MustGet().Title, ShouldEqual, "Big Buck Bunny")
		})

		Convey("Closest resolves an exact title", func() {
			video := Closest("Sintel")
			So(video.MustGet().Title, ShouldEqual, "Sintel")
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		filesystem.SetMemMapFs()

		Convey("An empty query matches everything", func() {
			So(Filter(""), ShouldResemble, builtin)
		})

		Convey("A fuzzy query narrows the list", func() {
			matches := Filter("bunny")
			So(matches, ShouldHaveLength, 1)
			So(matches[0].Title, ShouldEqual, "Big Buck Bunny")
		})

		Convey("A garbage query matches nothing", func() {
			So(Filter("zzzzzz"), ShouldBeEmpty)
		})
	})
}
