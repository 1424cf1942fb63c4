// Package history provides the implementation for tracking and persisting user media consumption state.
package history

import (
	"github.com/metafates/gache"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/where"
)

// cacher provides an abstracted, disk-backed registry for playback progress records.
var cacher = gache.New[map[string]*SavedVideo](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of historical playback records from the persistent store.
func Get() (map[string]*SavedVideo, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedVideo), nil
	}
	return cached, nil
}

// Save persists the playback progress of a video to the history registry.
func Save(video catalog.Video, position, duration float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedVideo(video)
	record.LastPosition = position
	record.Duration = duration

	percentage := 0.0
	if duration > 0 {
		percentage = position / duration * 100
	}

	// Idempotency: Maintain the maximum observed playback percentage to prevent regressions on re-watch.
	if existing, exists := saved[video.ID]; exists {
		if percentage < existing.WatchedPercentage {
			percentage = existing.WatchedPercentage
		}
	}
	record.WatchedPercentage = percentage

	saved[video.ID] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific playback record from the history registry.
func Remove(video *SavedVideo) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, video.ID)
	return cacher.Set(saved)
}
