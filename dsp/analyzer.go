// SPDX-License-Identifier: EPL-2.0

package dsp

// Default STFT parameters, matching the common 2048/512 analysis setup.
const (
	DefaultFFTSize = 2048
	DefaultHopSize = 512
)

// Analyzer bundles the STFT parameters and exposes the package's
// primitives as methods.  It is stateless beyond its configuration and
// safe for concurrent use; each method computes from scratch over its
// input, so independent feature workers can share one Analyzer.
type Analyzer struct {
	FFTSize int
	HopSize int
}

// NewAnalyzer returns an Analyzer with the given STFT parameters.
// Non-positive values fall back to the defaults.
func NewAnalyzer(fftSize, hopSize int) *Analyzer {
	if fftSize <= 0 {
		fftSize = DefaultFFTSize
	}
	if hopSize <= 0 {
		hopSize = DefaultHopSize
	}

	return &Analyzer{FFTSize: fftSize, HopSize: hopSize}
}

func (a *Analyzer) RMS(y []float32) float64 { return RMS(y) }

func (a *Analyzer) FrameRMS(y []float32) []float64 {
	return FrameRMS(y, a.FFTSize, a.HopSize)
}

func (a *Analyzer) ZeroCrossingRate(y []float32) []float64 {
	return ZeroCrossingRate(y, a.FFTSize, a.HopSize)
}

func (a *Analyzer) SpectralCentroid(y []float32, sampleRate int) []float64 {
	return SpectralCentroid(STFT(y, sampleRate, a.FFTSize, a.HopSize))
}

func (a *Analyzer) SpectralBandwidth(y []float32, sampleRate int) []float64 {
	return SpectralBandwidth(STFT(y, sampleRate, a.FFTSize, a.HopSize))
}

func (a *Analyzer) PipTrack(y []float32, sampleRate int) (pitches, mags [][]float64) {
	track := PipTrack(STFT(y, sampleRate, a.FFTSize, a.HopSize))
	return track.Pitches, track.Mags
}

func (a *Analyzer) OnsetStrength(y []float32, sampleRate int) []float64 {
	return OnsetStrength(STFT(y, sampleRate, a.FFTSize, a.HopSize))
}

func (a *Analyzer) EstimateTempo(env []float64, sampleRate int) float64 {
	return EstimateTempo(env, sampleRate, a.HopSize)
}
