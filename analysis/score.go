// SPDX-License-Identifier: EPL-2.0

package analysis

// Criterion names as they appear in a score breakdown.
const (
	CriterionBitrate             = "bitrate"
	CriterionDynamicRange        = "dynamic_range"
	CriterionEncodingQuality     = "encoding_quality"
	CriterionLoudnessDynamics    = "loudness_dynamics"
	CriterionStructuralIntegrity = "structural_integrity"
)

// Each criterion awards exactly one of the two sub-scores.
const (
	subScoreHigh = 20
	subScoreLow  = 10
)

// Quality cutoffs.  These values are deliberately sharp, there is no
// partial credit between the two sub-score levels.
const (
	bitrateCutoffKbps    = 256
	dynamicRangeCutoffDB = 12
	loudnessCutoffDB     = -18
	bandwidthCutoffHz    = 1000
)

// Breakdown maps criterion names to their awarded sub-scores.
type Breakdown map[string]int

// Criteria returns the criterion names in their canonical order.
func Criteria() []string {
	return []string{
		CriterionBitrate,
		CriterionDynamicRange,
		CriterionEncodingQuality,
		CriterionLoudnessDynamics,
		CriterionStructuralIntegrity,
	}
}

// Composite returns the sum of all sub-scores.
func (b Breakdown) Composite() int {
	total := 0
	for _, sub := range b {
		total += sub
	}
	return total
}

// Score maps a feature set to its per-criterion breakdown.  It reads
// only the documented feature keys and is a pure function: identical
// features always produce an identical breakdown.  Missing keys read
// as zero and fail their cutoffs.
func Score(features FeatureSet) Breakdown {
	bitrate := features[FeatureBitrateKbps]
	dynamicRange := features[FeatureDynamicRangeDB]
	loudness := features[FeatureLoudnessDB]
	bandwidth := features[FeatureSpectralBandwidthHz]

	breakdown := make(Breakdown, 5)
	breakdown[CriterionBitrate] = subScore(bitrate > bitrateCutoffKbps)
	breakdown[CriterionDynamicRange] = subScore(dynamicRange > dynamicRangeCutoffDB)
	breakdown[CriterionEncodingQuality] = subScore(bitrate > bitrateCutoffKbps)
	breakdown[CriterionLoudnessDynamics] = subScore(loudness > loudnessCutoffDB && dynamicRange > dynamicRangeCutoffDB)
	breakdown[CriterionStructuralIntegrity] = subScore(bandwidth > bandwidthCutoffHz)
	return breakdown
}

func subScore(high bool) int {
	if high {
		return subScoreHigh
	}
	return subScoreLow
}
