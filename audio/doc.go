// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio building blocks of the analyzer.
//
// This package contains the core types the rest of the module is built on:
//   - Source interface for streaming audio input
//   - SampleBuffer for fully decoded, in-memory mono PCM
//   - MonoMixer for channel folding
//   - Resampler for sample rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the decode pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing them to be
// chained with the mixer and resampler.
//
// # SampleBuffer
//
// A SampleBuffer is the unit of work for analysis and playback: the whole
// signal decoded to mono float32, plus sample rate and duration.  Buffers
// are immutable once constructed, which makes a single buffer safe to
// share read-only between concurrently running feature workers and the
// spectrogram renderer:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	buf, err := reg.DecodeFile("track.wav")
//
// Derived views never mutate the original:
//
//	analysis := buf.Clip(60)   // first 60 seconds, for feature extraction
//	tail := buf.Tail(0.5)      // second half, for seek playback
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths.  Use SampleBuffer.PCM16 to convert back to 16-bit PCM
// when writing playable assets.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// DecodeFile wraps every failure (open, codec, empty stream) in a
// *DecodeError carrying the offending path.
package audio
