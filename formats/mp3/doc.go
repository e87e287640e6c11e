// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files
// into PCM samples.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// Output is always stereo float32 in [-1.0, 1.0]; the audio package's
// MonoMixer folds it down when a mono SampleBuffer is built.  Decoding
// only; MP3 writing is not supported.
package mp3
