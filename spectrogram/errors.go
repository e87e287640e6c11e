// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"errors"
	"fmt"
)

var ErrEmptyBuffer = errors.New("cannot render an empty buffer")

// RenderError reports a spectrogram rendering failure.  Rendering is
// never fatal to an analysis run; callers convert this into a status
// event and carry on without an image.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render spectrogram: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
