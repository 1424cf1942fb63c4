package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/internal/ui"
	"github.com/vizor-cli/vizor/open"
	"github.com/vizor-cli/vizor/session"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case snapshotMsg:
		b.snapshot = session.Snapshot(msg)
		if b.snapshot.InspectionSuspected && b.state == playerState {
			b.newState(blockedState)
		}
		return b, tea.Batch(cmd, b.waitForSnapshot())
	case widgetExitedMsg:
		// The playback process went away underneath the session.
		b.closeSession()
		b.setState(catalogState)
		return b, tea.Batch(cmd, b.loadCatalog())
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			b.closeSession()
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case catalogState:
		return b.updateCatalog(msg)
	case playerState:
		return b.updatePlayer(msg)
	case blockedState:
		return b.updateBlocked(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case sessionOpenedMsg:
		b.newState(playerState)
		return b, tea.Batch(b.stopLoading(), b.waitForWidgetExit())
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
			} else {
				return b, tea.Quit
			}
		}
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.catalogC.Items()); n > 0 && b.catalogC.Index() == 0 {
				b.catalogC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.catalogC.Items()); n > 0 && b.catalogC.Index() == n-1 {
				b.catalogC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.catalogC.SelectedItem() != nil {
				video := b.catalogC.SelectedItem().(*listItem).internal.(catalog.Video)
				if err := open.Run(video.URL()); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.catalogC.FilterState() == list.Filtering {
				break
			}
			if b.catalogC.SelectedItem() == nil {
				break
			}
			video := b.catalogC.SelectedItem().(*listItem).internal.(catalog.Video)

			b.progressStatus = "Opening " + video.Title
			b.newState(loadingState)
			return b, tea.Batch(
				b.startLoading(),
				b.spinnerC.Tick,
				b.openSession(video),
				b.waitForSnapshot(),
			)
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	b.catalogC, cmd = b.catalogC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return b.updatePlayerMouse(msg)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeSession()
			b.setState(catalogState)
			return b, b.loadCatalog()
		case bubblesKey.Matches(msg, b.keymap.playPause):
			b.sess.TogglePlayPause()
			return b, ui.Notify(b.sessionStatus())
		case bubblesKey.Matches(msg, b.keymap.replay):
			if b.snapshot.EndScreenVisible {
				b.sess.Replay()
			}
		case bubblesKey.Matches(msg, b.keymap.rewind):
			b.sess.Rewind()
		case bubblesKey.Matches(msg, b.keymap.mute):
			b.sess.ToggleMute()
		case bubblesKey.Matches(msg, b.keymap.volumeUp):
			b.sess.SetVolume(b.snapshot.Volume + 5)
		case bubblesKey.Matches(msg, b.keymap.volumeDown):
			b.sess.SetVolume(b.snapshot.Volume - 5)
		case bubblesKey.Matches(msg, b.keymap.fullscreen):
			b.sess.ToggleFullscreen()
		}
	}

	return b, nil
}

// updatePlayerMouse routes pointer events over the session surface:
// motion feeds the inactivity timer, left clicks on the seek bar map to
// a seek fraction, right clicks are swallowed.
func (b *statefulBubble) updatePlayerMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonRight {
		// Context menu suppression over the session surface is
		// unconditional, independent of the guard's detection state.
		return b, nil
	}

	if msg.Action == tea.MouseActionMotion {
		b.sess.NotifyActivity()
		return b, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		b.sess.NotifyActivity()
		if msg.Y == b.barLine && b.barWidth > 0 {
			b.sess.SeekToFraction(session.Fraction(msg.X, b.barLeft, b.barWidth))
		}
	}

	return b, nil
}

func (b *statefulBubble) updateBlocked(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeSession()
			b.setState(catalogState)
			return b, b.loadCatalog()
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeSession()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.closeSession()
			return b, tea.Quit
		}
	}

	return b, nil
}
