// SPDX-License-Identifier: EPL-2.0

// Package analysis turns decoded sample buffers into quality reports.
//
// The pipeline runs in stages: a worker pool extracts a FeatureSet
// from the buffer, the scoring rules map features to a per-criterion
// breakdown, and the orchestrator assembles everything into a Report
// while publishing progress events.  Spectrogram rendering happens
// concurrently with extraction and its failure never blocks the
// report.
package analysis
