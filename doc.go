// SPDX-License-Identifier: EPL-2.0

// Package yydb analyzes audio files and scores their quality.
//
// An analysis run decodes the file to a mono float32 buffer, extracts
// a set of level, spectral, rhythm and encoding features over a worker
// pool, maps them to a per-criterion score breakdown and assembles the
// result into an analysis.Report.  A spectrogram image is rendered
// concurrently and delivered alongside the report.
//
// # Supported Formats
//
// The default registry decodes the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to analyze a file is AnalyzeFile:
//
//	report, img, err := yydb.AnalyzeFile("track.mp3", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Render())
//	// img holds the spectrogram, or nil if rendering failed
//
// For progress events, history persistence or custom window sizes,
// build the pipeline explicitly with NewApp and the analysis,
// spectrogram and store packages.
package yydb
