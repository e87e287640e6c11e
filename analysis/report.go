// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sumingyd/yydb-analyzer/utils"
)

// Report is the finalized outcome of one analysis run.  It is built
// incrementally by the orchestrator and must not be mutated once it
// has been handed to a sink or store.
type Report struct {
	ID              uuid.UUID
	Path            string
	FileName        string
	SizeBytes       int64
	Hash            string
	DurationSeconds float64
	SampleRate      int
	Features        FeatureSet
	Breakdown       Breakdown
	Composite       int
	CreatedAt       time.Time
}

// AsMap flattens the report into nested maps of plain strings and
// numbers, the shape external writers serialize.
func (r *Report) AsMap() map[string]any {
	features := make(map[string]any, len(r.Features))
	for key, value := range r.Features {
		features[key] = value
	}
	breakdown := make(map[string]any, len(r.Breakdown))
	for key, value := range r.Breakdown {
		breakdown[key] = value
	}
	return map[string]any{
		"id": r.ID.String(),
		"file": map[string]any{
			"path":             r.Path,
			"name":             r.FileName,
			"size_bytes":       r.SizeBytes,
			"hash":             r.Hash,
			"duration_seconds": r.DurationSeconds,
			"sample_rate":      r.SampleRate,
		},
		"features":   features,
		"scores":     breakdown,
		"composite":  r.Composite,
		"created_at": r.CreatedAt.Format(time.RFC3339),
	}
}

// Render formats the report as a human-readable text block.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\nWhen: %s\n", r.FileName, r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration: %s | SR: %d Hz | Size: %d bytes | MD5: %s\n\n",
		utils.FormatTime(r.DurationSeconds), r.SampleRate, r.SizeBytes, r.Hash)

	fmt.Fprintf(&b, "Levels: RMS %.4f | Peak %.4f | Loudness %.2f dB | Dynamic range %.2f dB | Silence %.2f%%\n",
		r.Features[FeatureRMS], r.Features[FeaturePeak],
		r.Features[FeatureLoudnessDB], r.Features[FeatureDynamicRangeDB],
		r.Features[FeatureSilentRatio]*100)
	fmt.Fprintf(&b, "Spectral: Centroid %.0f Hz | Bandwidth %.0f Hz | ZeroX %.4f\n",
		r.Features[FeatureSpectralCentroidHz], r.Features[FeatureSpectralBandwidthHz],
		r.Features[FeatureZeroCrossingRate])
	fmt.Fprintf(&b, "Rhythm: Tempo %.1f BPM | Pitch mean %.1f Hz\n",
		r.Features[FeatureTempoBPM], r.Features[FeaturePitchMeanHz])
	fmt.Fprintf(&b, "Shape: Energy std %.4f | Symmetry %+.4f | Kurtosis %.3f | Skewness %+.3f\n",
		r.Features[FeatureEnergyStd], r.Features[FeatureSymmetry],
		r.Features[FeatureKurtosis], r.Features[FeatureSkewness])
	fmt.Fprintf(&b, "Encoding: Bitrate %.0f kbps | Compression %.3f\n\n",
		r.Features[FeatureBitrateKbps], r.Features[FeatureCompressionRatio])

	fmt.Fprintf(&b, "Scores:\n")
	for _, name := range Criteria() {
		fmt.Fprintf(&b, "  %-20s : %d\n", name, r.Breakdown[name])
	}
	fmt.Fprintf(&b, "Composite: %d / 100\n", r.Composite)
	return b.String()
}
