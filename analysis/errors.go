// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"fmt"
)

var ErrEmptyBuffer = errors.New("buffer contains no samples")

// ExtractionError reports the failure of a single metric computation.
// One failing metric aborts the whole extraction: partial feature sets
// are discarded, never reported.
type ExtractionError struct {
	Metric string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Metric, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
