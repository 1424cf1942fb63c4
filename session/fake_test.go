package session

import (
	"sync"

	"github.com/vizor-cli/vizor/widget"
)

// fakeWidget records every command it receives and serves canned
// position/duration/volume values.
type fakeWidget struct {
	mu sync.Mutex

	calls []string

	duration float64
	position float64
	volume   int
	muted    bool

	exited chan struct{}
}

func newFakeWidget(duration float64) *fakeWidget {
	return &fakeWidget{
		duration: duration,
		volume:   100,
		exited:   make(chan struct{}),
	}
}

func (f *fakeWidget) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeWidget) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeWidget) PlayVideo() error  { f.record("play"); return nil }
func (f *fakeWidget) PauseVideo() error { f.record("pause"); return nil }

func (f *fakeWidget) SeekTo(seconds float64, _ bool) error {
	f.mu.Lock()
	f.calls = append(f.calls, "seek")
	f.position = seconds
	f.mu.Unlock()
	return nil
}

func (f *fakeWidget) GetCurrentTime() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position, nil
}

func (f *fakeWidget) GetDuration() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.duration, nil
}

func (f *fakeWidget) SetVolume(volume int) error {
	f.mu.Lock()
	f.calls = append(f.calls, "setVolume")
	f.volume = volume
	f.mu.Unlock()
	return nil
}

func (f *fakeWidget) GetVolume() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume, nil
}

func (f *fakeWidget) Mute() error   { f.record("mute"); return nil }
func (f *fakeWidget) UnMute() error { f.record("unmute"); return nil }

func (f *fakeWidget) IsMuted() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted, nil
}

func (f *fakeWidget) RequestFullscreen() error { f.record("requestFullscreen"); return nil }
func (f *fakeWidget) ExitFullscreen() error    { f.record("exitFullscreen"); return nil }

func (f *fakeWidget) IsRunning() bool       { return true }
func (f *fakeWidget) Close() error          { f.record("close"); return nil }
func (f *fakeWidget) Socket() string        { return "" }
func (f *fakeWidget) Wait() <-chan struct{} { return f.exited }

var _ widget.Widget = (*fakeWidget)(nil)
