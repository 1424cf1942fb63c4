package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vizor-cli/vizor/color"
	"github.com/vizor-cli/vizor/icon"
	"github.com/vizor-cli/vizor/session"
	"github.com/vizor-cli/vizor/style"
	"github.com/vizor-cli/vizor/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case catalogState:
		output = b.viewCatalog()
	case playerState:
		output = b.viewPlayer()
	case blockedState:
		output = b.viewBlocked()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewCatalog() string {
	return listExtraPaddingStyle.Render(b.catalogC.View())
}

// viewPlayer renders the transport overlay from the current snapshot.
// The seek bar's on-screen geometry is recorded here so clicks can be
// mapped back to a fraction.
func (b *statefulBubble) viewPlayer() string {
	snap := b.snapshot

	title := style.Truncate(b.width)(style.Fg(color.Purple)(b.currentVideo.Title))
	if snap.StreamKind == session.Live {
		title = style.Tag(style.Base, style.Red)("LIVE") + " " + title
	}

	lines := []string{
		style.Title("Now Playing"),
		"",
		title,
		"",
	}

	// Click mapping needs the bar's absolute terminal position.
	b.barLine, b.barLeft, b.barWidth = -1, 0, 0

	switch {
	case snap.EndScreenVisible:
		lines = append(lines,
			icon.Get(icon.Replay)+" Playback finished",
			"",
			style.Faint("press enter to replay"),
		)
	case snap.ControlsVisible:
		lines = append(lines, b.controlsRow(snap))

		if snap.StreamKind == session.Finite {
			fraction := 0.0
			if snap.Duration > 0 {
				fraction = snap.Position / snap.Duration
			}

			b.barLine = paddingStyle.GetPaddingTop() + len(lines)
			b.barLeft = paddingStyle.GetPaddingLeft()
			b.barWidth = b.progressC.Width

			lines = append(lines,
				b.progressC.ViewAs(fraction),
				style.Faint(util.FormatTime(snap.Position)+" / "+util.FormatTime(snap.Duration)),
			)
		}

		if snap.FullscreenExitButtonVisible {
			lines = append(lines, "", icon.Get(icon.ExitFullscreen)+" "+style.Faint("press f to exit fullscreen"))
		}
	default:
		lines = append(lines, style.Faint("move the pointer to show controls"))
	}

	return b.renderLines(true, lines)
}

// controlsRow renders the transport control strip.
func (b *statefulBubble) controlsRow(snap session.Snapshot) string {
	var parts []string

	if snap.Playback == session.Playing {
		parts = append(parts, icon.Get(icon.Pause))
	} else {
		parts = append(parts, icon.Get(icon.Play))
	}

	if snap.StreamKind != session.Live {
		parts = append(parts, icon.Get(icon.Rewind))
	}

	if snap.Muted {
		parts = append(parts, icon.Get(icon.VolumeMuted))
	} else {
		parts = append(parts, fmt.Sprintf("%s %d%%", icon.Get(icon.VolumeOn), snap.Volume))
	}

	if snap.Fullscreen {
		parts = append(parts, icon.Get(icon.ExitFullscreen))
	} else {
		parts = append(parts, icon.Get(icon.Fullscreen))
	}

	return strings.Join(parts, "  ")
}

func (b *statefulBubble) viewBlocked() string {
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Blocked"),
			"",
			icon.Get(icon.Lock) + " Playback is blocked: inspection of this session was detected.",
			"",
			style.Faint("press esc to return to the catalog"),
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
