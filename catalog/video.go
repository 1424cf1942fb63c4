package catalog

import (
	"fmt"

	"github.com/vizor-cli/vizor/constant"
)

// Video is a single catalog entry: a navigable descriptor of a playable stream.
type Video struct {
	ID           string `json:"id" jsonschema:"description=Opaque identifier passed to the playback widget"`
	Title        string `json:"title" jsonschema:"description=Human-readable title shown in the catalog"`
	ThumbnailURL string `json:"thumbnail_url" jsonschema:"description=Preview image location,format=uri"`
}

func (v Video) String() string {
	return v.Title
}

// URL returns the canonical watch page for the video.
func (v Video) URL() string {
	return fmt.Sprintf(constant.WatchURLTemplate, v.ID)
}
