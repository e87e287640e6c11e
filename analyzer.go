// SPDX-License-Identifier: EPL-2.0

package yydb

import (
	"fmt"
	"image"

	"github.com/sumingyd/yydb-analyzer/analysis"
	"github.com/sumingyd/yydb-analyzer/audio"
	"github.com/sumingyd/yydb-analyzer/config"
	"github.com/sumingyd/yydb-analyzer/dsp"
	"github.com/sumingyd/yydb-analyzer/formats/aiff"
	"github.com/sumingyd/yydb-analyzer/formats/mp3"
	"github.com/sumingyd/yydb-analyzer/formats/vorbis"
	"github.com/sumingyd/yydb-analyzer/formats/wav"
	"github.com/sumingyd/yydb-analyzer/playback"
	"github.com/sumingyd/yydb-analyzer/spectrogram"
	"github.com/sumingyd/yydb-analyzer/store"
)

// DefaultRegistry returns a registry with all built-in decoders
// registered under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	return registry
}

// App bundles a fully wired analysis pipeline.
type App struct {
	Registry     *audio.Registry
	Orchestrator *analysis.Orchestrator

	cfg     *config.Config
	sink    analysis.Sink
	history *store.History
}

// NewApp wires decoders, the extraction pool, the spectrogram
// renderer and the optional report history together from cfg.  A nil
// cfg loads configuration from the environment; a nil sink discards
// progress events.
func NewApp(cfg *config.Config, sink analysis.Sink) (*App, error) {
	if cfg == nil {
		cfg = config.Load()
	}

	var history *store.History
	if cfg.HistoryPath != "" {
		var err error
		history, err = store.Open(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
	}

	lib := dsp.NewAnalyzer(cfg.FFTSize, cfg.HopSize)
	renderer := spectrogram.NewRenderer(0, 0)
	renderer.FFTSize = cfg.FFTSize
	renderer.HopSize = cfg.HopSize

	registry := DefaultRegistry()
	orchestrator := analysis.NewOrchestrator(
		registry,
		analysis.NewExtractor(lib, cfg.Workers),
		renderer,
		analysis.NewReporter(sink),
		storeOrNil(history),
	)
	orchestrator.WindowSeconds = cfg.WindowSeconds
	orchestrator.AnalysisRate = cfg.AnalysisRate

	return &App{
		Registry:     registry,
		Orchestrator: orchestrator,
		cfg:          cfg,
		sink:         sink,
		history:      history,
	}, nil
}

// storeOrNil keeps a typed-nil *store.History out of the orchestrator's
// ReportStore interface.
func storeOrNil(history *store.History) analysis.ReportStore {
	if history == nil {
		return nil
	}
	return history
}

// Analyze runs the full pipeline on the file at path.
func (a *App) Analyze(path string) (*analysis.Report, image.Image, error) {
	return a.Orchestrator.Run(path)
}

// History returns the report archive, or nil when none is configured.
func (a *App) History() *store.History {
	return a.history
}

// NewPlayer builds a playback controller on engine, sharing the app's
// temp directory and forwarding position updates to the progress sink
// as status-only events.
func (a *App) NewPlayer(engine playback.Engine) *playback.Controller {
	var status playback.StatusFunc
	if a.sink != nil {
		sink := a.sink
		status = func(line string) {
			sink.Publish(analysis.Event{Status: line})
		}
	}
	return playback.NewController(engine, a.cfg.TempDir, status)
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

// AnalyzeFile is a one-shot convenience wrapper around NewApp and
// Analyze.  A nil cfg loads configuration from the environment.
func AnalyzeFile(path string, cfg *config.Config) (*analysis.Report, image.Image, error) {
	app, err := NewApp(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	defer app.Close()

	return app.Analyze(path)
}
