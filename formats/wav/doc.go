// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF) audio decoding and 16-bit PCM writing.
//
// Decoding is built on github.com/go-audio/wav, which walks the RIFF
// chunk list properly, so files with extra metadata chunks before the
// data chunk decode fine.  PCM at 8, 16, 24 and 32 bits is normalized
// to float32 in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder prefers an io.ReadSeeker; a plain io.Reader is read fully
// into memory first.
//
// # Writing
//
// WriteWAV16 writes mono 16-bit PCM, which is how the playback
// controller materializes seek assets:
//
//	file, _ := os.Create("clip.wav")
//	wav.WriteWAV16(file, 44100, buffer.PCM16())
//
// Only mono 16-bit output is supported; the analyzer never needs more.
package wav
