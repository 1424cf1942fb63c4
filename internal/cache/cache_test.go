package cache

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/where"
)

func TestCollectGarbage(t *testing.T) {
	Convey("Given a cache directory with fresh and stale entries", t, func() {
		filesystem.SetMemMapFs()

		dir := where.Cache()
		stale := filepath.Join(dir, "stale.json")
		fresh := filepath.Join(dir, "fresh.json")

		So(filesystem.API().WriteFile(stale, []byte("{}"), 0655), ShouldBeNil)
		So(filesystem.API().WriteFile(fresh, []byte("{}"), 0655), ShouldBeNil)

		old := time.Now().Add(-TTL - time.Hour)
		So(filesystem.API().Chtimes(stale, old, old), ShouldBeNil)

		Convey("When garbage is collected", func() {
			CollectGarbage()

			Convey("Only the stale entry should be removed", func() {
				So(exists(stale), ShouldBeFalse)
				So(exists(fresh), ShouldBeTrue)
			})
		})
	})
}

func exists(path string) bool {
	ok, _ := filesystem.API().Exists(path)
	return ok
}
