package history

import (
	"time"

	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/style"
	"github.com/vizor-cli/vizor/util"
)

// SavedVideo represents a single playback entry preserved in the user's history.
type SavedVideo struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	WatchedPercentage float64 `json:"watched_percentage"`
	LastPosition      float64 `json:"last_position"`
	Duration          float64 `json:"duration"`
	WatchedAt         int64   `json:"watched_at"`
}

func (s *SavedVideo) String() string {
	return s.Title + " " + style.Faint(util.FormatTime(s.LastPosition)+" / "+util.FormatTime(s.Duration))
}

func newSavedVideo(video catalog.Video) *SavedVideo {
	return &SavedVideo{
		ID:        video.ID,
		Title:     video.Title,
		WatchedAt: time.Now().Unix(),
	}
}
