// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/sumingyd/yydb-analyzer/audio"
	"github.com/sumingyd/yydb-analyzer/dsp"
)

// Extraction is the outcome of a full feature pass over one buffer.
type Extraction struct {
	Features FeatureSet
	FileHash string
}

// Extractor runs the metric tasks over a worker pool.  Each task
// computes one group of related features so unrelated metrics never
// wait on each other.
type Extractor struct {
	lib     Library
	workers int
}

// NewExtractor creates an extractor backed by lib.  A workers value
// below 1 falls back to the number of CPUs.
func NewExtractor(lib Library, workers int) *Extractor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Extractor{lib: lib, workers: workers}
}

// metricTask computes one feature group into out.  Tasks run
// concurrently and must not touch shared state.
type metricTask struct {
	name string
	run  func() (map[string]float64, error)
}

// Extract computes the complete feature set for buf.  sizeBytes and
// duration describe the whole source file, which may be longer than
// the analysis buffer; the encoding metrics must relate file size to
// the full track, not the analysis window.  A non-positive duration
// falls back to the buffer's own.  The first task failure aborts the
// run and is returned wrapped in an *ExtractionError naming the
// failed metric group.
func (e *Extractor) Extract(buf *audio.SampleBuffer, sizeBytes int64, duration float64) (*Extraction, error) {
	if buf == nil || buf.Empty() {
		return nil, ErrEmptyBuffer
	}
	if duration <= 0 {
		duration = buf.DurationSeconds
	}

	y := buf.Samples
	rate := buf.SampleRate

	var hash string
	tasks := []metricTask{
		{name: "levels", run: func() (map[string]float64, error) {
			return e.levels(y), nil
		}},
		{name: FeatureSpectralCentroidHz, run: func() (map[string]float64, error) {
			frames := e.lib.SpectralCentroid(y, rate)
			return map[string]float64{FeatureSpectralCentroidHz: dsp.Mean(frames)}, nil
		}},
		{name: FeatureSpectralBandwidthHz, run: func() (map[string]float64, error) {
			frames := e.lib.SpectralBandwidth(y, rate)
			return map[string]float64{FeatureSpectralBandwidthHz: dsp.Mean(frames)}, nil
		}},
		{name: FeatureZeroCrossingRate, run: func() (map[string]float64, error) {
			frames := e.lib.ZeroCrossingRate(y)
			return map[string]float64{FeatureZeroCrossingRate: dsp.Mean(frames)}, nil
		}},
		{name: FeaturePitchMeanHz, run: func() (map[string]float64, error) {
			pitches, mags := e.lib.PipTrack(y, rate)
			return map[string]float64{FeaturePitchMeanHz: pitchMean(pitches, mags)}, nil
		}},
		{name: FeatureTempoBPM, run: func() (map[string]float64, error) {
			env := e.lib.OnsetStrength(y, rate)
			return map[string]float64{FeatureTempoBPM: e.lib.EstimateTempo(env, rate)}, nil
		}},
		{name: "encoding", run: func() (map[string]float64, error) {
			return encodingMetrics(sizeBytes, duration, rate), nil
		}},
		{name: "statistics", run: func() (map[string]float64, error) {
			return e.statistics(y), nil
		}},
		{name: "file_hash", run: func() (map[string]float64, error) {
			sum, err := HashFile(buf.SourcePath)
			if err != nil {
				return nil, err
			}
			hash = sum
			return nil, nil
		}},
	}

	var (
		mtx      sync.Mutex
		firstErr error
		features = make(FeatureSet)
		jobs     = make(chan metricTask)
		wg       sync.WaitGroup
	)

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range jobs {
				values, err := task.run()
				mtx.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = &ExtractionError{Metric: task.name, Err: err}
					}
				} else {
					for key, value := range values {
						features[key] = value
					}
				}
				mtx.Unlock()
			}
		}()
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &Extraction{Features: features, FileHash: hash}, nil
}

// levels covers the amplitude-domain metrics.  silent_ratio is the
// fraction of samples below the silence threshold.
func (e *Extractor) levels(y []float32) map[string]float64 {
	rms := e.lib.RMS(y)
	peak := dsp.Peak(y)

	silent := 0
	for _, s := range y {
		if math.Abs(float64(s)) < silentThreshold {
			silent++
		}
	}

	return map[string]float64{
		FeatureRMS:            rms,
		FeaturePeak:           peak,
		FeatureLoudnessDB:     20 * math.Log10(rms+logEpsilon),
		FeatureDynamicRangeDB: 20 * math.Log10((peak+logEpsilon)/(rms+logEpsilon)),
		FeatureSilentRatio:    float64(silent) / float64(len(y)),
	}
}

func (e *Extractor) statistics(y []float32) map[string]float64 {
	energy := e.lib.FrameRMS(y)
	return map[string]float64{
		FeatureEnergyStd: dsp.Std(energy),
		FeatureSymmetry:  dsp.Symmetry(y),
		FeatureKurtosis:  dsp.Kurtosis(y),
		FeatureSkewness:  dsp.Skewness(y),
	}
}

func encodingMetrics(sizeBytes int64, duration float64, rate int) map[string]float64 {
	if duration <= 0 {
		return map[string]float64{
			FeatureBitrateKbps:      0,
			FeatureCompressionRatio: 0,
		}
	}
	return map[string]float64{
		FeatureBitrateKbps:      float64(sizeBytes) * 8 / duration / 1000,
		FeatureCompressionRatio: float64(sizeBytes) / (duration * float64(rate) * 2),
	}
}

// pitchMean averages the tracked pitches whose magnitude exceeds the
// median magnitude of the whole track, which discards weak bins that
// carry no stable pitch.  Returns 0 when nothing clears the cut.
func pitchMean(pitches, mags [][]float64) float64 {
	var all []float64
	for _, frame := range mags {
		all = append(all, frame...)
	}
	if len(all) == 0 {
		return 0
	}
	sort.Float64s(all)
	median := all[len(all)/2]

	var sum float64
	var n int
	for i := range pitches {
		for j := range pitches[i] {
			if mags[i][j] > median {
				sum += pitches[i][j]
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
