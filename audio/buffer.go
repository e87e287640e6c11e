// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/sumingyd/yydb-analyzer/utils"
)

// SampleBuffer holds a fully decoded, mono PCM signal together with its
// sample rate and duration.  Buffers are immutable once constructed: the
// derivation helpers (Clip, Tail, Resample) return new buffers that share
// or copy the sample data but never write to it.  This makes a buffer
// safe to hand to any number of concurrent readers.
type SampleBuffer struct {
	Samples         []float32
	SampleRate      int
	DurationSeconds float64
	SourcePath      string
}

// NewSampleBuffer wraps samples at rate.  Duration is derived from the
// sample count.
func NewSampleBuffer(samples []float32, rate int, sourcePath string) *SampleBuffer {
	b := &SampleBuffer{
		Samples:    samples,
		SampleRate: rate,
		SourcePath: sourcePath,
	}
	if rate > 0 {
		b.DurationSeconds = float64(len(samples)) / float64(rate)
	}

	return b
}

// Empty reports whether the buffer holds no samples.
func (b *SampleBuffer) Empty() bool {
	return b == nil || len(b.Samples) == 0
}

// Clip returns a buffer capped at maxSeconds of audio from the start.
// A non-positive maxSeconds, or a buffer already shorter than the cap,
// returns the receiver unchanged.  The returned buffer aliases the
// original sample data.
func (b *SampleBuffer) Clip(maxSeconds float64) *SampleBuffer {
	if maxSeconds <= 0 {
		return b
	}

	limit := int(maxSeconds * float64(b.SampleRate))
	if limit >= len(b.Samples) {
		return b
	}

	return NewSampleBuffer(b.Samples[:limit], b.SampleRate, b.SourcePath)
}

// Tail returns the suffix of the buffer starting at fraction of its
// duration.  fraction is clamped to [0,1]; Tail(1) returns an empty
// buffer.  The returned buffer aliases the original sample data.
func (b *SampleBuffer) Tail(fraction float64) *SampleBuffer {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	start := int(fraction * float64(len(b.Samples)))
	if start > len(b.Samples) {
		start = len(b.Samples)
	}

	return NewSampleBuffer(b.Samples[start:], b.SampleRate, b.SourcePath)
}

// PCM16 converts the buffer to 16-bit signed PCM, clamping to [-1,1].
func (b *SampleBuffer) PCM16() []int16 {
	pcm := make([]int16, len(b.Samples))
	for i, s := range b.Samples {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return pcm
}

// Resample returns a copy of the buffer converted to rate using the
// cubic-interpolation Resampler.  A rate that matches the buffer, or a
// non-positive rate, returns the receiver unchanged.
func (b *SampleBuffer) Resample(rate int) (*SampleBuffer, error) {
	if rate <= 0 || rate == b.SampleRate {
		return b, nil
	}

	res := NewResampler(newBufferSource(b), rate)
	samples, err := drain(res, nil)
	if err != nil {
		return nil, fmt.Errorf("resample to %d Hz: %w", rate, err)
	}

	return NewSampleBuffer(samples, rate, b.SourcePath), nil
}

// ReadBuffer drains src through a MonoMixer and collects the whole
// stream into a SampleBuffer.  It fails with ErrEmptyAudio when the
// source produces no samples at all.
func ReadBuffer(src Source, sourcePath string) (*SampleBuffer, error) {
	mono := NewMonoMixer(src)

	samples, err := drain(mono, nil)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}

	return NewSampleBuffer(samples, src.SampleRate(), sourcePath), nil
}

// DecodeFile opens path, resolves a decoder from the registry by file
// extension and reads the whole stream into a mono SampleBuffer.  The
// entire file is decoded into memory; there is no streaming decode.
// All failures are reported as *DecodeError.
func (r *Registry) DecodeFile(path string) (*SampleBuffer, error) {
	dec, ok := r.ForPath(path)
	if !ok {
		return nil, &DecodeError{Path: path, Err: ErrUnsupportedFormat}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer src.Close()

	buf, err := ReadBuffer(src, path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return buf, nil
}

// drain reads src to EOF, appending onto dst.
func drain(src Source, dst []float32) ([]float32, error) {
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			dst = append(dst, buf[:n]...)
		}

		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// bufferSource adapts an in-memory SampleBuffer back into a Source so
// buffers can be fed through the streaming pipeline (e.g. Resample).
type bufferSource struct {
	buf *SampleBuffer
	pos int
}

func newBufferSource(b *SampleBuffer) *bufferSource {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return 1 }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}
	return n, nil
}
