// SPDX-License-Identifier: EPL-2.0

// Package spectrogram renders a SampleBuffer into a Spek-style bitmap:
// short-time Fourier magnitudes, log-amplitude scaled in dB relative to
// the loudest bin, painted with the inferno palette on a logarithmic
// frequency axis.
//
// Rendering is a plain CPU job decoupled from feature extraction; the
// orchestrator runs it concurrently with the metric workers and
// tolerates its failure.  RenderAsync wraps Render in a goroutine with
// a one-shot buffered channel so completion delivery never blocks:
//
//	renderer := spectrogram.NewRenderer(1000, 400)
//	result := <-renderer.RenderAsync(buf)
//	if result.Err != nil {
//	    // show the report without an image
//	}
package spectrogram
