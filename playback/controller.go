// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sumingyd/yydb-analyzer/audio"
	"github.com/sumingyd/yydb-analyzer/formats/wav"
	"github.com/sumingyd/yydb-analyzer/utils"
)

// State is the controller's phase in its lifecycle.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StatusFunc receives human-readable status lines, including the
// periodic elapsed-time updates while playing.
type StatusFunc func(status string)

const positionInterval = 500 * time.Millisecond

// Controller drives an Engine through the playback state machine.
// Seeking works by writing the remaining suffix of the loaded buffer
// to a temporary WAV asset and playing that; at most one temp asset
// exists at a time and it is released on replacement, stop, or Close.
//
// All methods are safe for concurrent use.
type Controller struct {
	engine  Engine
	tempDir string
	status  StatusFunc

	mtx        sync.Mutex
	state      State
	buffer     *audio.SampleBuffer
	baseOffset time.Duration
	tempAsset  string

	tickerDone chan struct{}
	tickerWG   sync.WaitGroup
}

// NewController creates a controller in the Idle state.  An empty
// tempDir falls back to the system temp directory; a nil status
// function discards status lines.
func NewController(engine Engine, tempDir string, status StatusFunc) *Controller {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if status == nil {
		status = func(string) {}
	}
	return &Controller{
		engine:  engine,
		tempDir: tempDir,
		status:  status,
		state:   Idle,
	}
}

// SetBuffer attaches the full-resolution buffer backing the current
// track.  Seek is a no-op until a non-empty buffer is attached.
func (c *Controller) SetBuffer(buf *audio.SampleBuffer) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.buffer = buf
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state
}

// Play loads the asset at path and starts playback from the
// beginning.  A controller already playing is stopped first.  Load
// and playback failures leave the controller Stopped and are reported
// as a status line as well as the returned error.
func (c *Controller) Play(path string) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state == Playing || c.state == Paused {
		c.stopLocked()
	}

	c.baseOffset = 0
	return c.startLocked(path)
}

// Pause transitions Playing to Paused and is a no-op in every other
// state.
func (c *Controller) Pause() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != Playing {
		return
	}
	c.engine.Pause()
	c.state = Paused
}

// Resume transitions Paused back to Playing and is a no-op in every
// other state.
func (c *Controller) Resume() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != Paused {
		return
	}
	c.engine.Resume()
	c.state = Playing
}

// Stop halts playback from any state, resets the position, cancels
// the position-sampling task and releases the temp asset.
func (c *Controller) Stop() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.stopLocked()
}

// Seek jumps to fraction of the track's duration, where 0 is the
// start and 1 the end.  It requires an attached buffer with known
// duration; otherwise it is a no-op.  Seeking to the very end stops
// playback instead of playing an empty asset.
func (c *Controller) Seek(fraction float64) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.buffer.Empty() || c.buffer.DurationSeconds <= 0 {
		return nil
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction >= 1 {
		c.stopLocked()
		return nil
	}

	tail := c.buffer.Tail(fraction)
	asset, err := c.writeTempAsset(tail)
	if err != nil {
		c.stopLocked()
		perr := &PlaybackError{Op: "seek", Err: err}
		c.status(perr.Error())
		return perr
	}

	c.stopLocked()
	c.tempAsset = asset
	c.baseOffset = time.Duration(fraction * c.buffer.DurationSeconds * float64(time.Second))
	return c.startLocked(asset)
}

// Close tears the controller down, stopping playback, deleting any
// remaining temp asset and waiting for the position ticker to exit.
func (c *Controller) Close() {
	c.Stop()
	c.tickerWG.Wait()
}

// startLocked loads and plays path, starting the position ticker.
// Caller holds the mutex.
func (c *Controller) startLocked(path string) error {
	if err := c.engine.Load(path); err != nil {
		c.state = Stopped
		perr := &PlaybackError{Op: "load", Err: err}
		c.status(perr.Error())
		return perr
	}
	if err := c.engine.Play(); err != nil {
		c.state = Stopped
		perr := &PlaybackError{Op: "play", Err: err}
		c.status(perr.Error())
		return perr
	}

	c.state = Playing
	c.startTickerLocked()
	return nil
}

// stopLocked is Stop without taking the mutex.  The position ticker
// is only signalled here, not awaited: it rechecks the state before
// publishing, so no status line can trail the stop.
func (c *Controller) stopLocked() {
	if c.tickerDone != nil {
		close(c.tickerDone)
		c.tickerDone = nil
	}

	if c.state == Playing || c.state == Paused {
		c.engine.Stop()
	}
	c.state = Stopped
	c.baseOffset = 0
	c.releaseTempAssetLocked()
}

func (c *Controller) startTickerLocked() {
	done := make(chan struct{})
	c.tickerDone = done
	c.tickerWG.Add(1)
	go func() {
		defer c.tickerWG.Done()
		ticker := time.NewTicker(positionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.publishPosition()
			}
		}
	}()
}

func (c *Controller) publishPosition() {
	c.mtx.Lock()
	if c.state != Playing {
		c.mtx.Unlock()
		return
	}
	elapsed := c.baseOffset + c.engine.Position()
	var total float64
	if c.buffer != nil {
		total = c.buffer.DurationSeconds
	}
	c.mtx.Unlock()

	line := utils.FormatTime(elapsed.Seconds())
	if total > 0 {
		line += " / " + utils.FormatTime(total)
	}
	c.status(line)
}

// writeTempAsset encodes buf as a 16-bit WAV file under the temp
// directory and returns its path.
func (c *Controller) writeTempAsset(buf *audio.SampleBuffer) (string, error) {
	path := filepath.Join(c.tempDir, "seek-"+uuid.NewString()+".wav")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := wav.WriteWAV16(file, buf.SampleRate, buf.PCM16()); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// releaseTempAssetLocked deletes the current temp asset best-effort.
// The engine may still hold the file open briefly after Stop, so a
// failed removal is retried once before being logged and abandoned.
func (c *Controller) releaseTempAssetLocked() {
	if c.tempAsset == "" {
		return
	}
	path := c.tempAsset
	c.tempAsset = ""

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		time.Sleep(50 * time.Millisecond)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN playback: leaving stale temp asset %s: %v", path, err)
		}
	}
}
