// SPDX-License-Identifier: EPL-2.0

package playback_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sumingyd/yydb-analyzer/internal/audiotest"
	"github.com/sumingyd/yydb-analyzer/playback"
)

// mockEngine records calls and simulates a device that always
// succeeds unless told otherwise.
type mockEngine struct {
	mtx      sync.Mutex
	loaded   string
	playing  bool
	paused   bool
	loadErr  error
	playErr  error
	position time.Duration
	calls    []string
}

func (m *mockEngine) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *mockEngine) Load(path string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.record("load")
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = path
	return nil
}

func (m *mockEngine) Play() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.record("play")
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = true
	m.paused = false
	return nil
}

func (m *mockEngine) Pause() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.record("pause")
	m.paused = true
}

func (m *mockEngine) Resume() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.record("resume")
	m.paused = false
}

func (m *mockEngine) Stop() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.record("stop")
	m.playing = false
	m.loaded = ""
}

func (m *mockEngine) Position() time.Duration {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.position
}

func (m *mockEngine) loadedPath() string {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.loaded
}

func TestControllerLifecycle(t *testing.T) {
	t.Parallel()

	engine := &mockEngine{}
	ctrl := playback.NewController(engine, t.TempDir(), nil)
	defer ctrl.Close()

	if got := ctrl.State(); got != playback.Idle {
		t.Fatalf("initial state = %v, expected idle", got)
	}

	if err := ctrl.Play("/music/track.wav"); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if got := ctrl.State(); got != playback.Playing {
		t.Errorf("state after Play = %v", got)
	}
	if got := engine.loadedPath(); got != "/music/track.wav" {
		t.Errorf("engine loaded %s", got)
	}

	ctrl.Pause()
	if got := ctrl.State(); got != playback.Paused {
		t.Errorf("state after Pause = %v", got)
	}

	ctrl.Resume()
	if got := ctrl.State(); got != playback.Playing {
		t.Errorf("state after Resume = %v", got)
	}

	ctrl.Stop()
	if got := ctrl.State(); got != playback.Stopped {
		t.Errorf("state after Stop = %v", got)
	}
}

func TestControllerPauseOnlyFromPlaying(t *testing.T) {
	t.Parallel()

	engine := &mockEngine{}
	ctrl := playback.NewController(engine, t.TempDir(), nil)
	defer ctrl.Close()

	ctrl.Pause()
	if got := ctrl.State(); got != playback.Idle {
		t.Errorf("Pause from idle moved state to %v", got)
	}

	ctrl.Resume()
	if got := ctrl.State(); got != playback.Idle {
		t.Errorf("Resume from idle moved state to %v", got)
	}
}

func TestControllerLoadFailure(t *testing.T) {
	t.Parallel()

	var statusLines []string
	var statusMtx sync.Mutex
	engine := &mockEngine{loadErr: errors.New("device busy")}
	ctrl := playback.NewController(engine, t.TempDir(), func(s string) {
		statusMtx.Lock()
		statusLines = append(statusLines, s)
		statusMtx.Unlock()
	})
	defer ctrl.Close()

	err := ctrl.Play("/music/track.wav")
	var perr *playback.PlaybackError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PlaybackError, got %v", err)
	}
	if got := ctrl.State(); got != playback.Stopped {
		t.Errorf("state after load failure = %v, expected stopped", got)
	}

	statusMtx.Lock()
	defer statusMtx.Unlock()
	if len(statusLines) == 0 || !strings.Contains(statusLines[0], "device busy") {
		t.Errorf("load failure not reported as status: %v", statusLines)
	}
}

func TestControllerSeekWithoutBufferIsNoop(t *testing.T) {
	t.Parallel()

	engine := &mockEngine{}
	ctrl := playback.NewController(engine, t.TempDir(), nil)
	defer ctrl.Close()

	if err := ctrl.Seek(0.5); err != nil {
		t.Fatalf("Seek() without buffer returned error: %v", err)
	}
	if got := ctrl.State(); got != playback.Idle {
		t.Errorf("Seek without buffer moved state to %v", got)
	}
}

func TestControllerSeekPlaysTailAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	engine := &mockEngine{}
	ctrl := playback.NewController(engine, dir, nil)
	defer ctrl.Close()

	ctrl.SetBuffer(audiotest.SineBuffer(8000, 2.0, 440))
	if err := ctrl.Seek(0.5); err != nil {
		t.Fatalf("Seek() error: %v", err)
	}
	if got := ctrl.State(); got != playback.Playing {
		t.Fatalf("state after Seek = %v, expected playing", got)
	}

	asset := engine.loadedPath()
	if filepath.Dir(asset) != dir {
		t.Errorf("temp asset %s not under %s", asset, dir)
	}
	info, err := os.Stat(asset)
	if err != nil {
		t.Fatalf("temp asset missing: %v", err)
	}
	// 1 second tail of 16-bit mono at 8 kHz plus the WAV header.
	if info.Size() < 16000 {
		t.Errorf("temp asset only %d bytes, expected at least the tail samples", info.Size())
	}
}

func TestControllerSeekToEndStops(t *testing.T) {
	t.Parallel()

	engine := &mockEngine{}
	ctrl := playback.NewController(engine, t.TempDir(), nil)
	defer ctrl.Close()

	ctrl.SetBuffer(audiotest.SineBuffer(8000, 1.0, 440))
	if err := ctrl.Play("/music/track.wav"); err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if err := ctrl.Seek(1.0); err != nil {
		t.Fatalf("Seek(1.0) error: %v", err)
	}
	if got := ctrl.State(); got != playback.Stopped {
		t.Errorf("state after Seek(1.0) = %v, expected stopped", got)
	}
}

func TestControllerSeekReleasesPreviousAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	engine := &mockEngine{}
	ctrl := playback.NewController(engine, dir, nil)
	defer ctrl.Close()

	ctrl.SetBuffer(audiotest.SineBuffer(8000, 1.0, 440))
	if err := ctrl.Seek(0.25); err != nil {
		t.Fatalf("first Seek() error: %v", err)
	}
	first := engine.loadedPath()

	if err := ctrl.Seek(0.75); err != nil {
		t.Fatalf("second Seek() error: %v", err)
	}
	second := engine.loadedPath()
	if first == second {
		t.Fatal("second seek did not produce a new asset")
	}

	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("previous temp asset %s still exists", first)
	}

	ctrl.Stop()
	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Errorf("temp asset %s survived Stop", second)
	}
}

func TestControllerStopResetsState(t *testing.T) {
	t.Parallel()

	engine := &mockEngine{}
	ctrl := playback.NewController(engine, t.TempDir(), nil)
	defer ctrl.Close()

	ctrl.Stop()
	if got := ctrl.State(); got != playback.Stopped {
		t.Errorf("Stop from idle left state %v", got)
	}

	// A fresh Play after Stop starts over.
	if err := ctrl.Play("/music/other.wav"); err != nil {
		t.Fatalf("Play() after Stop error: %v", err)
	}
	if got := ctrl.State(); got != playback.Playing {
		t.Errorf("state after replay = %v", got)
	}
}
