// SPDX-License-Identifier: EPL-2.0

package playback

import "time"

// Engine is the audio output device the controller drives.  The
// presentation layer supplies the real device; tests supply fakes.
// Engines are not required to be safe for concurrent use, the
// controller serializes all calls.
type Engine interface {
	// Load prepares the asset at path for playback.
	Load(path string) error
	// Play starts or restarts playback of the loaded asset.
	Play() error
	// Pause halts playback keeping the current position.
	Pause()
	// Resume continues playback after a Pause.
	Resume()
	// Stop halts playback and releases the loaded asset.
	Stop()
	// Position reports the elapsed play time of the current asset.
	Position() time.Duration
}
