// Package cache prunes expired entries from the localized cache directory.
package cache

import (
	"path/filepath"
	"time"

	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/log"
	"github.com/vizor-cli/vizor/where"
)

// TTL is the retention window for cache files. Entries untouched for
// longer than this are removed on the next startup sweep.
const TTL = 7 * 24 * time.Hour

// CollectGarbage removes cache files whose modification time exceeds TTL.
// It is meant to run in the background on startup.
func CollectGarbage() {
	dir := where.Cache()

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		log.Warnf("cache sweep: %s", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if time.Since(entry.ModTime()) > TTL {
			_ = filesystem.API().Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
