package widget

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/log"
	"github.com/vizor-cli/vizor/util"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV implements the Widget interface using mpv's JSON-IPC protocol.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	mu         sync.Mutex    // Protects socket writes
}

// NewMPV creates a new MPV widget instance (does not start playback).
func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
	}
}

// Open launches mpv against the given URL. The process starts paused in
// a visible window so the session controls the first play transition.
func (m *MPV) Open(rawURL string, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	safeTitle := sanitizeTitle(title)

	// Generate a random socket path using os.TempDir() for cross-platform support
	// (macOS $TMPDIR is /var/folders/... not /tmp/)
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("vizor-%x.sock", randomBytes))
	}

	// Pass ONLY the socket, title, and URL.
	// Do NOT pass --vo, --profile, --hwdec — respect user's mpv.conf.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle), // Some mpv builds only respect --title
		"--force-window=yes",
		"--idle=yes",
		safeURL,
	}

	binary := viper.GetString(key.Player)
	if binary == "" {
		binary = "mpv"
	}
	m.cmd = exec.Command(binary, args...)

	// Detach from parent process group to prevent cascading shell panics.
	m.cmd.SysProcAttr = sysProcAttr()

	// Disable standard pipes to prevent resource leaks.
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	// Background goroutine to reap the process and prevent zombies
	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		// If socket never became ready, kill the orphaned process
		if m.cmd.Process != nil {
			select {
			case <-m.exited:
				// Already exited
			default:
				log.Warnf("killing mpv: socket never became ready")
				_ = m.cmd.Process.Kill()
			}
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		// Check if process already exited
		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// PlayVideo resumes playback by clearing the pause property.
func (m *MPV) PlayVideo() error {
	return m.set("pause", false)
}

// PauseVideo suspends playback by raising the pause property.
func (m *MPV) PauseVideo() error {
	return m.set("pause", true)
}

// SeekTo moves playback to the given absolute position in seconds.
func (m *MPV) SeekTo(seconds float64, allowSeekAhead bool) error {
	mode := "absolute"
	if allowSeekAhead {
		mode = "absolute+exact"
	}
	_, err := m.sendCommand([]interface{}{"seek", seconds, mode})
	return err
}

// GetCurrentTime returns the current playback position in seconds.
func (m *MPV) GetCurrentTime() (float64, error) {
	return m.getFloatProperty("time-pos")
}

// GetDuration returns the total duration of the current media in seconds.
// Live streams have no duration property; that maps to zero rather than
// an error so the caller can classify the stream.
func (m *MPV) GetDuration() (float64, error) {
	duration, err := m.getFloatProperty("duration")
	if err != nil {
		if strings.Contains(err.Error(), "property unavailable") {
			return 0, nil
		}
		return 0, err
	}
	return duration, nil
}

// SetVolume pushes a clamped volume percentage.
func (m *MPV) SetVolume(volume int) error {
	return m.set("volume", util.Clamp(volume, 0, 100))
}

// GetVolume returns the current volume percentage.
func (m *MPV) GetVolume() (int, error) {
	volume, err := m.getFloatProperty("volume")
	if err != nil {
		return 0, err
	}
	return util.Clamp(int(volume), 0, 100), nil
}

// Mute silences output.
func (m *MPV) Mute() error {
	return m.set("mute", true)
}

// UnMute restores output.
func (m *MPV) UnMute() error {
	return m.set("mute", false)
}

// IsMuted returns the current mute flag.
func (m *MPV) IsMuted() (bool, error) {
	data, err := m.sendCommand([]interface{}{"get_property", "mute"})
	if err != nil {
		return false, err
	}
	muted, ok := data.(bool)
	if !ok {
		return false, nil
	}
	return muted, nil
}

// RequestFullscreen asks the mpv window to enter fullscreen. The flag is
// only trusted once the property-change notification comes back.
func (m *MPV) RequestFullscreen() error {
	return m.set("fullscreen", true)
}

// ExitFullscreen asks the mpv window to leave fullscreen.
func (m *MPV) ExitFullscreen() error {
	return m.set("fullscreen", false)
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	// Fast check: process already exited?
	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Close shuts down the mpv process and cleans up resources.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	// Try graceful quit via IPC
	_, _ = m.sendCommand([]interface{}{"quit"})

	// Wait for process to exit (with timeout)
	select {
	case <-m.exited:
		// Clean exit
	case <-time.After(3 * time.Second):
		// Force kill if graceful quit didn't work
		_ = killProcess(m.cmd)
	}

	// Clean up the socket file
	_ = os.Remove(m.socketPath)

	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// set pushes a property value over IPC.
func (m *MPV) set(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// getFloatProperty is a helper to retrieve a float64 mpv property via IPC.
func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget validates that a URL is safe to pass to mpv,
// rejecting anything that could be parsed as a flag.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	return l, nil
}

// sanitizeTitle cleans the title up for mpv's window title flags.
func sanitizeTitle(title string) string {
	t := strings.ReplaceAll(title, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	t = strings.ReplaceAll(t, "\x00", "")
	return strings.TrimSpace(t)
}
