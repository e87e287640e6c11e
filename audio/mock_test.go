// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic samples for tests.  It implements
// Source; Reset rewinds it so one source can feed several readers.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	sample     func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, sample func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		sample:     sample,
	}
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func newSineSource(sampleRate, channels, frames int, freq float64) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(sampleRate)))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *mockSource) Reset() { m.pos = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.frames - m.pos; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.sample(m.pos+f, ch)
		}
	}
	m.pos += frames

	n := frames * m.channels
	if m.pos >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
