// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/sumingyd/yydb-analyzer/audio"
)

// SineBuffer returns a mono SampleBuffer holding seconds of a sine
// tone at freq Hz.
func SineBuffer(sampleRate int, seconds float64, freq float64) *audio.SampleBuffer {
	n := int(float64(sampleRate) * seconds)
	samples := make([]float32, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = float32(math.Sin(2 * math.Pi * freq * t))
	}

	return audio.NewSampleBuffer(samples, sampleRate, "")
}

// ConstantBuffer returns a mono SampleBuffer filled with value.
func ConstantBuffer(sampleRate int, seconds float64, value float32) *audio.SampleBuffer {
	n := int(float64(sampleRate) * seconds)
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = value
	}

	return audio.NewSampleBuffer(samples, sampleRate, "")
}
