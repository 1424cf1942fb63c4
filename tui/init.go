package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vizor-cli/vizor/catalog"
)

// Init initializes the terminal user interface, triggering the initial
// catalog load or, with a preselected video, the playback session.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options != nil && b.options.VideoID != "" {
		video, err := catalog.Get(b.options.VideoID)
		if err != nil {
			b.raiseError(err)
			return nil
		}

		b.progressStatus = "Opening " + video.Title
		b.setState(loadingState)
		return tea.Batch(
			b.startLoading(),
			b.spinnerC.Tick,
			b.openSession(video),
			b.waitForSnapshot(),
		)
	}

	b.setState(catalogState)
	return b.loadCatalog()
}
