// Package catalog exposes the static list of playable videos.
//
// The built-in entries can be replaced wholesale by a catalog.json file
// in the config directory.
package catalog

import (
	"encoding/json"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/log"
	"github.com/vizor-cli/vizor/where"
)

var builtin = []Video{
	{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
	{ID: "9bZkp7q19f0", Title: "Gangnam Style", ThumbnailURL: "https://i.ytimg.com/vi/9bZkp7q19f0/hqdefault.jpg"},
	{ID: "jNQXAC9IVRw", Title: "Me at the zoo", ThumbnailURL: "https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg"},
	{ID: "aqz-KE-bpKQ", Title: "Big Buck Bunny", ThumbnailURL: "https://i.ytimg.com/vi/aqz-KE-bpKQ/hqdefault.jpg"},
	{ID: "eRsGyueVLvQ", Title: "Sintel", ThumbnailURL: "https://i.ytimg.com/vi/eRsGyueVLvQ/hqdefault.jpg"},
}

// List returns the active catalog: the contents of catalog.json if one
// exists in the config directory, otherwise the built-in entries.
func List() []Video {
	path := where.Catalog()
	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return builtin
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		log.Warnf("reading %s: %s", path, err)
		return builtin
	}

	var videos []Video
	if err = json.Unmarshal(contents, &videos); err != nil {
		log.Warnf("parsing %s: %s", path, err)
		return builtin
	}

	if len(videos) == 0 {
		return builtin
	}
	return videos
}

// Get looks a video up by its exact identifier.
func Get(id string) (Video, error) {
	video, ok := lo.Find(List(), func(v Video) bool {
		return v.ID == id
	})
	if !ok {
		return Video{}, fmt.Errorf("video %q is not in the catalog", id)
	}
	return video, nil
}

// Closest resolves a free-form query to the catalog entry whose title
// has the smallest edit distance from it.
func Closest(query string) mo.Option[Video] {
	videos := List()
	if len(videos) == 0 {
		return mo.None[Video]()
	}

	closest := lo.MinBy(videos, func(a, b Video) bool {
		return levenshtein.Distance(query, a.Title) < levenshtein.Distance(query, b.Title)
	})
	return mo.Some(closest)
}

// Filter returns the catalog entries whose titles fuzzy-match the query.
// An empty query matches everything.
func Filter(query string) []Video {
	if query == "" {
		return List()
	}

	return lo.Filter(List(), func(v Video, _ int) bool {
		return fuzzy.MatchFold(query, v.Title)
	})
}
