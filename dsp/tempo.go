// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Tempo search range in beats per minute.
const (
	tempoMinBPM  = 30.0
	tempoMaxBPM  = 300.0
	tempoRefBPM  = 120.0
	tempoBPMStd  = 1.0 // width of the log2 prior around the reference
	onsetEpsilon = 1e-10
)

// OnsetStrength computes a musical onset-strength envelope from a
// magnitude spectrogram: per frame, the mean positive difference of
// log-compressed bin magnitudes against the previous frame.  The first
// frame has strength 0.
func OnsetStrength(s *Spectrogram) []float64 {
	env := make([]float64, s.Frames())

	for f := 1; f < s.Frames(); f++ {
		prev, cur := s.Magnitudes[f-1], s.Magnitudes[f]

		var flux float64
		for b := range cur {
			d := math.Log(cur[b]+onsetEpsilon) - math.Log(prev[b]+onsetEpsilon)
			if d > 0 {
				flux += d
			}
		}
		env[f] = flux / float64(len(cur))
	}

	return env
}

// EstimateTempo estimates the dominant tempo of an onset envelope in
// BPM.  It autocorrelates the mean-removed envelope over lags covering
// the tempo search range, weights candidates by a log-normal prior
// centered on 120 BPM, and returns the best candidate.  Envelopes too
// short to cover the fastest searchable tempo yield 0.
func EstimateTempo(env []float64, sampleRate, hopSize int) float64 {
	frameRate := float64(sampleRate) / float64(hopSize)

	minLag := int(60 * frameRate / tempoMaxBPM)
	maxLag := int(60 * frameRate / tempoMinBPM)
	if minLag < 1 {
		minLag = 1
	}
	if len(env) <= minLag {
		return 0
	}
	if maxLag >= len(env) {
		maxLag = len(env) - 1
	}

	mu := Mean(env)
	centered := make([]float64, len(env))
	for i, v := range env {
		centered[i] = v - mu
	}

	bestBPM, bestScore := 0.0, math.Inf(-1)
	for lag := minLag; lag <= maxLag; lag++ {
		var ac float64
		for i := lag; i < len(centered); i++ {
			ac += centered[i] * centered[i-lag]
		}

		bpm := 60 * frameRate / float64(lag)
		prior := math.Exp(-0.5 * math.Pow(math.Log2(bpm/tempoRefBPM)/tempoBPMStd, 2))

		if score := ac * prior; score > bestScore {
			bestScore = score
			bestBPM = bpm
		}
	}

	if bestScore <= 0 {
		// No periodicity found.
		return 0
	}

	return bestBPM
}
