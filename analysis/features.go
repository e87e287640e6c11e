// SPDX-License-Identifier: EPL-2.0

package analysis

// Canonical FeatureSet keys.
const (
	FeatureRMS                 = "rms"
	FeaturePeak                = "peak"
	FeatureLoudnessDB          = "loudness_db"
	FeatureDynamicRangeDB      = "dynamic_range_db"
	FeatureSilentRatio         = "silent_ratio"
	FeatureSpectralCentroidHz  = "spectral_centroid_hz"
	FeatureSpectralBandwidthHz = "spectral_bandwidth_hz"
	FeatureTempoBPM            = "tempo_bpm"
	FeaturePitchMeanHz         = "pitch_mean_hz"
	FeatureZeroCrossingRate    = "zero_crossing_rate"
	FeatureEnergyStd           = "energy_std"
	FeatureSymmetry            = "symmetry"
	FeatureKurtosis            = "kurtosis"
	FeatureSkewness            = "skewness"
	FeatureBitrateKbps         = "bitrate_kbps"
	FeatureCompressionRatio    = "compression_ratio"
)

// Numeric guards shared by the metric tasks.
const (
	// logEpsilon keeps the level metrics finite on silent input.
	logEpsilon = 1e-9
	// silentThreshold is the absolute amplitude below which a sample
	// counts as silence.
	silentThreshold = 1e-4
)

// FeatureSet maps metric names to their scalar values.  A set is built
// once per analysis run and never mutated after all workers report.
type FeatureSet map[string]float64

// Library is the signal-processing capability the extraction pipeline
// depends on.  Every method is a pure function over samples, which
// lets tests drive the pipeline with deterministic fakes decoupled
// from real DSP correctness.  *dsp.Analyzer is the production
// implementation.
type Library interface {
	RMS(y []float32) float64
	FrameRMS(y []float32) []float64
	ZeroCrossingRate(y []float32) []float64
	SpectralCentroid(y []float32, sampleRate int) []float64
	SpectralBandwidth(y []float32, sampleRate int) []float64
	PipTrack(y []float32, sampleRate int) (pitches, mags [][]float64)
	OnsetStrength(y []float32, sampleRate int) []float64
	EstimateTempo(env []float64, sampleRate int) float64
}
