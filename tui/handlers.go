package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/guard"
	"github.com/vizor-cli/vizor/history"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/log"
	"github.com/vizor-cli/vizor/session"
	"github.com/vizor-cli/vizor/widget"
)

// sessionOpenedMsg signals that the widget launched and the session wiring is live.
type sessionOpenedMsg struct{}

// snapshotMsg carries a fresh session snapshot into the update loop.
type snapshotMsg session.Snapshot

// widgetExitedMsg signals that the playback process terminated on its own.
type widgetExitedMsg struct{}

// loadCatalog populates the catalog list component.
func (b *statefulBubble) loadCatalog() tea.Cmd {
	videos := catalog.List()

	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = &listItem{internal: v}
	}

	return b.catalogC.SetItems(items)
}

// openSession launches the playback widget for a video and wires the
// session, its event listener and the inspection guard together.
func (b *statefulBubble) openSession(video catalog.Video) tea.Cmd {
	return func() tea.Msg {
		log.Infof("opening session for %s", video.ID)

		w := widget.NewMPV()
		if err := w.Open(video.URL(), video.Title); err != nil {
			return fmt.Errorf("open widget: %w", err)
		}

		sess := session.New(video.ID, func(snap session.Snapshot) {
			select {
			case b.snapshotChannel <- snap:
			default:
				// The update loop lags behind; the next snapshot carries
				// the full state anyway.
			}
		})

		listener := widget.NewListener(w.Socket(), widget.Events{
			OnReady: func() {
				sess.Attach(w)
				if viper.GetBool(key.PlayerAutoplay) {
					sess.TogglePlayPause()
				}
			},
			OnStateChange:      sess.HandleStateChange,
			OnFullscreenChange: sess.HandleFullscreenChange,
		})

		if err := listener.Start(); err != nil {
			_ = w.Close()
			return fmt.Errorf("start listener: %w", err)
		}

		var inspection *guard.Guard
		if viper.GetBool(key.GuardEnable) {
			inspection = guard.New(guard.Options{
				OnSuspected:         sess.SuspectInspection,
				SuppressContextMenu: viper.GetBool(key.GuardSuppressContextMenu),
			})
			inspection.Start()
		}

		b.currentVideo = video
		b.sess = sess
		b.playerWidget = w
		b.listener = listener
		b.inspection = inspection
		b.snapshot = sess.Snapshot()

		return sessionOpenedMsg{}
	}
}

// waitForSnapshot blocks until the session emits a state change.
func (b *statefulBubble) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-b.snapshotChannel)
	}
}

// waitForWidgetExit blocks until the playback process terminates.
func (b *statefulBubble) waitForWidgetExit() tea.Cmd {
	w := b.playerWidget
	return func() tea.Msg {
		<-w.Wait()
		return widgetExitedMsg{}
	}
}

// closeSession persists watch progress and releases every session
// resource: timers, subscriptions, the guard and the widget process.
func (b *statefulBubble) closeSession() {
	if b.sess == nil {
		return
	}

	snap := b.sess.Snapshot()
	if viper.GetBool(key.HistorySaveOnWatch) && snap.StreamKind == session.Finite {
		if err := history.Save(b.currentVideo, snap.Position, snap.Duration); err != nil {
			log.Warnf("saving history: %s", err)
		}
	}

	b.sess.Teardown()
	if b.listener != nil {
		b.listener.Stop()
	}
	if b.inspection != nil {
		b.inspection.Stop()
	}
	if b.playerWidget != nil {
		_ = b.playerWidget.Close()
	}

	b.sess = nil
	b.listener = nil
	b.inspection = nil
	b.playerWidget = nil

	log.Infof("session for %s closed", b.currentVideo.ID)
}
