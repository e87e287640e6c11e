// SPDX-License-Identifier: EPL-2.0

package playback

import "fmt"

// PlaybackError wraps a failure in the playback transport.  These are
// never fatal: the controller reports them as status text and settles
// in the Stopped state.
type PlaybackError struct {
	Op  string
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback %s: %v", e.Op, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }
