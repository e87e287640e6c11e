// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the signal-processing primitives the feature
// extraction pipeline is built on: short-time Fourier transform,
// spectral shape metrics, a piptrack-style pitch tracker, an
// onset-strength envelope with tempo estimation, and the scalar
// statistics (RMS, zero-crossing rate, higher-order moments).
//
// All functions are pure: they take samples (float32 in [-1, 1]) plus a
// sample rate and return values, never touching shared state.  That
// keeps them safe to call from any number of worker goroutines over the
// same buffer.
//
// The Analyzer type bundles the STFT parameters (window and hop size)
// and exposes the primitives as methods, which is the form the analysis
// package consumes through its Library interface:
//
//	an := dsp.NewAnalyzer(2048, 512)
//	centroid := dsp.Mean(an.SpectralCentroid(buf.Samples, buf.SampleRate))
//
// FFTs are computed with gonum.org/v1/gonum/dsp/fourier.
package dsp
