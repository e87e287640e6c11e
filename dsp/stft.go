// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrogram is a magnitude spectrogram: one row of FFTSize/2+1
// frequency bins per analysis frame.
type Spectrogram struct {
	Magnitudes [][]float64
	SampleRate int
	FFTSize    int
	HopSize    int
}

// Frames returns the number of time frames.
func (s *Spectrogram) Frames() int { return len(s.Magnitudes) }

// Bins returns the number of frequency bins per frame.
func (s *Spectrogram) Bins() int {
	if len(s.Magnitudes) == 0 {
		return 0
	}
	return len(s.Magnitudes[0])
}

// BinFrequency returns the center frequency of bin in Hz.
func (s *Spectrogram) BinFrequency(bin int) float64 {
	return float64(bin) * float64(s.SampleRate) / float64(s.FFTSize)
}

// FrameRate returns analysis frames per second.
func (s *Spectrogram) FrameRate() float64 {
	return float64(s.SampleRate) / float64(s.HopSize)
}

// STFT computes a magnitude spectrogram of y with a periodic Hann
// window of fftSize samples advanced by hopSize.  The signal is padded
// by reflection with fftSize/2 samples on both ends so frames are
// centered on their timestamps.  An empty input yields zero frames.
func STFT(y []float32, sampleRate, fftSize, hopSize int) *Spectrogram {
	spec := &Spectrogram{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		HopSize:    hopSize,
	}
	if len(y) == 0 {
		return spec
	}

	padded := reflectPad(y, fftSize/2)
	window := hannWindow(fftSize)
	fft := fourier.NewFFT(fftSize)

	frame := make([]float64, fftSize)
	coeffs := make([]complex128, fftSize/2+1)

	numFrames := 1 + (len(padded)-fftSize)/hopSize
	if numFrames < 1 {
		return spec
	}

	spec.Magnitudes = make([][]float64, 0, numFrames)
	for f := 0; f < numFrames; f++ {
		offset := f * hopSize
		for i := 0; i < fftSize; i++ {
			frame[i] = float64(padded[offset+i]) * window[i]
		}

		coeffs = fft.Coefficients(coeffs, frame)

		mags := make([]float64, len(coeffs))
		for i, c := range coeffs {
			mags[i] = cmplx.Abs(c)
		}
		spec.Magnitudes = append(spec.Magnitudes, mags)
	}

	return spec
}

// hannWindow returns a periodic Hann window of length n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

// reflectPad pads y with pad reflected samples on both sides.  Signals
// shorter than the pad width fall back to edge repetition.
func reflectPad(y []float32, pad int) []float32 {
	out := make([]float32, 0, len(y)+2*pad)

	for i := pad; i > 0; i-- {
		idx := i
		if idx >= len(y) {
			idx = len(y) - 1
		}
		out = append(out, y[idx])
	}

	out = append(out, y...)

	for i := 0; i < pad; i++ {
		idx := len(y) - 2 - i
		if idx < 0 {
			idx = 0
		}
		out = append(out, y[idx])
	}

	return out
}
