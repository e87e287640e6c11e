// SPDX-License-Identifier: EPL-2.0

package dsp

// Pitch tracker frequency range and per-frame peak threshold.
const (
	pitchMinHz     = 150.0
	pitchMaxHz     = 4000.0
	pitchThreshold = 0.1
)

// PitchTrack holds sparse per-frame pitch estimates: Pitches and Mags
// have one row per frame and one column per frequency bin, non-zero
// only where the tracker found a spectral peak.
type PitchTrack struct {
	Pitches [][]float64
	Mags    [][]float64
}

// PipTrack locates spectral peaks per frame and refines their
// frequencies by parabolic interpolation over the neighboring bins.
// Peaks are kept when they exceed pitchThreshold of the frame's maximum
// magnitude and fall inside the tracked frequency range.
func PipTrack(s *Spectrogram) *PitchTrack {
	track := &PitchTrack{
		Pitches: make([][]float64, s.Frames()),
		Mags:    make([][]float64, s.Frames()),
	}

	for f, mags := range s.Magnitudes {
		pitchRow := make([]float64, len(mags))
		magRow := make([]float64, len(mags))

		var frameMax float64
		for _, m := range mags {
			if m > frameMax {
				frameMax = m
			}
		}
		floor := pitchThreshold * frameMax

		for b := 1; b < len(mags)-1; b++ {
			m := mags[b]
			if m <= floor || m <= mags[b-1] || m < mags[b+1] {
				continue
			}

			freq := s.BinFrequency(b)
			if freq < pitchMinHz || freq > pitchMaxHz {
				continue
			}

			// Parabolic interpolation around the peak bin
			alpha, beta, gamma := mags[b-1], m, mags[b+1]
			denom := alpha - 2*beta + gamma
			shift := 0.0
			if denom != 0 {
				shift = 0.5 * (alpha - gamma) / denom
			}

			pitchRow[b] = (float64(b) + shift) * float64(s.SampleRate) / float64(s.FFTSize)
			magRow[b] = beta
		}

		track.Pitches[f] = pitchRow
		track.Mags[f] = magRow
	}

	return track
}
