// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sumingyd/yydb-analyzer/audio"
	"github.com/sumingyd/yydb-analyzer/spectrogram"
	"github.com/sumingyd/yydb-analyzer/utils"
)

// Renderer produces a spectrogram image off the calling goroutine and
// hands back the result over a one-shot channel.
type Renderer interface {
	RenderAsync(buf *audio.SampleBuffer) <-chan spectrogram.Result
}

// ReportStore persists finalized reports.
type ReportStore interface {
	Save(*Report) error
}

// Orchestrator sequences a full analysis run: decode, concurrent
// feature extraction and spectrogram rendering, scoring, report
// assembly.  Exactly one run may be active at a time; a second caller
// blocks until the first run finishes.
type Orchestrator struct {
	registry  *audio.Registry
	extractor *Extractor
	renderer  Renderer
	reporter  *Reporter
	store     ReportStore

	// WindowSeconds bounds the buffer handed to feature
	// extraction.  Zero or negative means the whole track.
	WindowSeconds float64

	// AnalysisRate resamples the analysis window to a fixed rate
	// before extraction.  Zero keeps the native rate.
	AnalysisRate int

	runMtx sync.Mutex
}

// NewOrchestrator wires the pipeline stages together.  renderer and
// store may be nil, in which case no image is produced and no report
// is persisted.
func NewOrchestrator(registry *audio.Registry, extractor *Extractor, renderer Renderer, reporter *Reporter, store ReportStore) *Orchestrator {
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	return &Orchestrator{
		registry:  registry,
		extractor: extractor,
		renderer:  renderer,
		reporter:  reporter,
		store:     store,
	}
}

// Run analyzes the file at path and returns the finalized report
// together with the spectrogram image, which is nil when rendering
// failed or no renderer is attached.  Decode and extraction failures
// abort the run; render and store failures are reported as status
// events and logged.
//
// Run blocks the calling goroutine until the report is finalized.
func (o *Orchestrator) Run(path string) (*Report, image.Image, error) {
	o.runMtx.Lock()
	defer o.runMtx.Unlock()

	start := time.Now()
	o.reporter.Reset()
	stopTicker := o.startElapsedTicker(start)

	publish := func(percent int, status string) {
		o.reporter.Publish(Event{
			Percent: percent,
			Status:  status,
			Elapsed: time.Since(start).Seconds(),
		})
	}

	publish(0, "Loading "+filepath.Base(path))

	info, err := os.Stat(path)
	if err != nil {
		stopTicker()
		return nil, nil, &audio.DecodeError{Path: path, Err: err}
	}

	buf, err := o.registry.DecodeFile(path)
	if err != nil {
		stopTicker()
		return nil, nil, err
	}
	publish(10, "Decoded "+filepath.Base(path))

	window := buf
	if o.WindowSeconds > 0 {
		window = buf.Clip(o.WindowSeconds)
	}
	if o.AnalysisRate > 0 {
		window, err = window.Resample(o.AnalysisRate)
		if err != nil {
			stopTicker()
			return nil, nil, &audio.DecodeError{Path: path, Err: err}
		}
	}

	// The spectrogram covers the whole track; only feature
	// extraction works on the capped window.
	var renderCh <-chan spectrogram.Result
	if o.renderer != nil {
		renderCh = o.renderer.RenderAsync(buf)
	}

	extraction, err := o.extractor.Extract(window, info.Size(), buf.DurationSeconds)
	if err != nil {
		stopTicker()
		return nil, nil, err
	}
	publish(50, "Features extracted")

	breakdown := Score(extraction.Features)
	publish(60, "Scored")

	report := &Report{
		ID:              uuid.New(),
		Path:            path,
		FileName:        filepath.Base(path),
		SizeBytes:       info.Size(),
		Hash:            extraction.FileHash,
		DurationSeconds: buf.DurationSeconds,
		SampleRate:      buf.SampleRate,
		Features:        extraction.Features,
		Breakdown:       breakdown,
		Composite:       breakdown.Composite(),
		CreatedAt:       time.Now(),
	}
	publish(70, "Report assembled")

	if o.store != nil {
		if err := o.store.Save(report); err != nil {
			log.Printf("WARN analysis: failed to persist report for %s: %v", report.FileName, err)
			publish(70, "History unavailable")
		}
	}

	var img image.Image
	if renderCh != nil {
		publish(80, "Rendering spectrogram")
		result := <-renderCh
		if result.Err != nil {
			log.Printf("WARN analysis: spectrogram failed for %s: %v", report.FileName, result.Err)
			publish(80, "Spectrogram unavailable")
		} else {
			img = result.Image
		}
	}

	stopTicker()
	publish(100, "Done")
	return report, img, nil
}

// startElapsedTicker publishes an elapsed-time event every second
// until the returned stop function is called.  The stop function
// waits for the ticker goroutine to exit so no event can trail the
// final one.
func (o *Orchestrator) startElapsedTicker(start time.Time) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				o.reporter.Publish(Event{
					Percent: o.reporter.Percent(),
					Status:  "Analyzing " + utils.FormatTime(time.Since(start).Seconds()),
					Elapsed: time.Since(start).Seconds(),
				})
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}
