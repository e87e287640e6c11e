// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/sumingyd/yydb-analyzer/audio"
	"github.com/sumingyd/yydb-analyzer/internal/audiotest"
)

// Example_readBuffer shows how a decoded stream becomes the
// SampleBuffer the analysis pipeline consumes.
func Example_readBuffer() {
	// A stereo source is mixed down to mono while reading.
	src := audiotest.NewConstantSource(8000, 2, 8000, 0.5)

	buf, err := audio.ReadBuffer(src, "track.wav")
	if err != nil {
		fmt.Println("read error:", err)
		return
	}

	fmt.Printf("%d samples, %.1fs at %d Hz\n",
		len(buf.Samples), buf.DurationSeconds, buf.SampleRate)
	// Output: 8000 samples, 1.0s at 8000 Hz
}

// Example_clipAndTail shows the two buffer views the pipeline derives:
// a duration-capped window for analysis and a suffix for seeking.
func Example_clipAndTail() {
	buf := audiotest.ConstantBuffer(8000, 2.0, 0.5)

	window := buf.Clip(1.0)
	tail := buf.Tail(0.75)

	fmt.Printf("window: %.1fs, tail: %.1fs\n",
		window.DurationSeconds, tail.DurationSeconds)
	// Output: window: 1.0s, tail: 0.5s
}
