// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package wraps github.com/go-audio/aiff.  Only 16-bit PCM AIFF
// files are supported; samples are normalized to float32 in [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// The decoder prefers an io.ReadSeeker; a plain io.Reader is read fully
// into memory first.
package aiff
