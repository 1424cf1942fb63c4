// Package mini implements a lightweight, menu-driven interface for catalog selection and playback.
package mini

import (
	"os"

	"github.com/samber/lo"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/guard"
	"github.com/vizor-cli/vizor/session"
	"github.com/vizor-cli/vizor/util"
	"github.com/vizor-cli/vizor/widget"
)

var (
	truncateAt = 100
)

type Options struct {
	// VideoID skips the selection menu and opens a session directly.
	VideoID string
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	selectedVideo catalog.Video

	sess         *session.Session
	playerWidget *widget.MPV
	listener     *widget.Listener
	inspection   *guard.Guard
}

func newMini() *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini()
	m.state = videoSelectState

	if options.VideoID != "" {
		video, err := catalog.Get(options.VideoID)
		if err != nil {
			return err
		}
		m.selectedVideo = video
		m.state = transportState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			m.closeSession()
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case videoSelectState:
		return m.handleVideoSelectState()
	case transportState:
		return m.handleTransportState()
	case quitState:
		m.closeSession()
		os.Exit(0)
	}

	return nil
}
