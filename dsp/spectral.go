// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// SpectralCentroid returns the magnitude-weighted mean frequency of
// each frame in Hz.  Frames with no energy yield 0.
func SpectralCentroid(s *Spectrogram) []float64 {
	out := make([]float64, s.Frames())

	for f, mags := range s.Magnitudes {
		var weighted, total float64
		for b, m := range mags {
			weighted += s.BinFrequency(b) * m
			total += m
		}
		if total > 0 {
			out[f] = weighted / total
		}
	}

	return out
}

// SpectralBandwidth returns, per frame, the magnitude-weighted standard
// deviation of frequency around the frame's centroid, in Hz.
func SpectralBandwidth(s *Spectrogram) []float64 {
	centroids := SpectralCentroid(s)
	out := make([]float64, s.Frames())

	for f, mags := range s.Magnitudes {
		var weighted, total float64
		for b, m := range mags {
			d := s.BinFrequency(b) - centroids[f]
			weighted += m * d * d
			total += m
		}
		if total > 0 {
			out[f] = math.Sqrt(weighted / total)
		}
	}

	return out
}
