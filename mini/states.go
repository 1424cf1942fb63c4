package mini

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/guard"
	"github.com/vizor-cli/vizor/history"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/session"
	"github.com/vizor-cli/vizor/util"
	"github.com/vizor-cli/vizor/widget"
)

type state int

const (
	videoSelectState state = iota + 1
	transportState
	quitState
)

const quitLabel = "Quit"

func (m *mini) handleVideoSelectState() error {
	videos := catalog.List()
	if limit := viper.GetInt(key.CatalogSearchLimit); limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}

	if len(videos) == 0 {
		fail("The catalog is empty")
		m.newState(quitState)
		return nil
	}

	options := lo.Map(videos, func(v catalog.Video, _ int) string {
		return v.Title
	})
	options = append(options, quitLabel)

	title("Select Video")
	choice, err := menu("Watch", options)
	if err != nil {
		return err
	}

	if choice == len(videos) {
		m.newState(quitState)
		return nil
	}

	m.selectedVideo = videos[choice]
	m.newState(transportState)
	return nil
}

// handleTransportState opens a playback session for the selected video
// and drives it through a menu loop until the user backs out.
func (m *mini) handleTransportState() error {
	if m.sess == nil {
		erase := progress("Opening " + m.selectedVideo.Title + "..")
		if err := m.openSession(); err != nil {
			return err
		}
		erase()
	}

	util.ClearScreen()
	snap := m.sess.Snapshot()

	if snap.InspectionSuspected {
		fail("Playback is blocked: inspection of this session was detected")
		m.closeSession()
		m.newState(videoSelectState)
		return nil
	}

	header := m.selectedVideo.Title
	if snap.StreamKind == session.Live {
		header = "LIVE " + header
	} else {
		header = fmt.Sprintf("%s  %s / %s", header, util.FormatTime(snap.Position), util.FormatTime(snap.Duration))
	}
	title(header)

	var options []string

	if snap.Playback == session.Playing {
		options = append(options, "Pause")
	} else {
		options = append(options, "Resume")
	}
	if snap.StreamKind != session.Live {
		options = append(options, "Rewind")
	}
	if snap.Muted {
		options = append(options, "Unmute")
	} else {
		options = append(options, "Mute")
	}
	options = append(options, "Replay", "Back", quitLabel)

	choice, err := menu("Transport", options)
	if err != nil {
		return err
	}

	switch options[choice] {
	case "Pause", "Resume":
		m.sess.TogglePlayPause()
	case "Rewind":
		m.sess.Rewind()
	case "Mute", "Unmute":
		m.sess.ToggleMute()
	case "Replay":
		m.sess.Replay()
	case "Back":
		m.closeSession()
		m.newState(videoSelectState)
	case quitLabel:
		m.newState(quitState)
	}

	return nil
}

// openSession mirrors the TUI's session wiring without the bubbletea loop.
func (m *mini) openSession() error {
	w := widget.NewMPV()
	if err := w.Open(m.selectedVideo.URL(), m.selectedVideo.Title); err != nil {
		return fmt.Errorf("open widget: %w", err)
	}

	sess := session.New(m.selectedVideo.ID, nil)

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

	if viper.GetBool(key.GuardEnable) {
		m.inspection = guard.New(guard.Options{
			OnSuspected:         sess.SuspectInspection,
			SuppressContextMenu: viper.GetBool(key.GuardSuppressContextMenu),
		})
		m.inspection.Start()
	}

	m.sess = sess
	m.playerWidget = w
	m.listener = listener
	return nil
}

func (m *mini) closeSession() {
	if m.sess == nil {
		return
	}

	snap := m.sess.Snapshot()
	if viper.GetBool(key.HistorySaveOnWatch) && snap.StreamKind == session.Finite {
		_ = history.Save(m.selectedVideo, snap.Position, snap.Duration)
	}

	m.sess.Teardown()
	if m.listener != nil {
		m.listener.Stop()
	}
	if m.inspection != nil {
		m.inspection.Stop()
	}
	if m.playerWidget != nil {
		_ = m.playerWidget.Close()
	}

	m.sess = nil
	m.listener = nil
	m.inspection = nil
	m.playerWidget = nil
}
