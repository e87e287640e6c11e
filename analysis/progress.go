// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"log"
	"sync"
)

// Event is one progress update for an analysis run.  Percent grows
// monotonically within a run, Status is free text for a status bar,
// Elapsed is seconds since the run started.
type Event struct {
	Percent int
	Status  string
	Elapsed float64
}

// Sink consumes progress events.  Publish is called from background
// goroutines and must be safe for concurrent use.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Event)

// Publish calls f(event).
func (f SinkFunc) Publish(event Event) { f(event) }

// Reporter forwards events to a sink while enforcing the per-run
// ordering guarantee: a published percent lower than the current
// high-water mark is raised to it, so consumers always observe a
// non-decreasing sequence.
type Reporter struct {
	sink Sink

	mtx     sync.Mutex
	percent int
}

// NewReporter wraps sink.  A nil sink discards all events.
func NewReporter(sink Sink) *Reporter {
	if sink == nil {
		sink = SinkFunc(func(Event) {})
	}
	return &Reporter{sink: sink}
}

// Publish forwards event to the sink, clamping its percent to the
// run's high-water mark.  The sink is called under the reporter's
// lock so concurrent publishers cannot deliver out of order.
func (r *Reporter) Publish(event Event) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if event.Percent < r.percent {
		event.Percent = r.percent
	} else {
		r.percent = event.Percent
	}
	r.sink.Publish(event)
}

// Reset clears the high-water mark for a new run.
func (r *Reporter) Reset() {
	r.mtx.Lock()
	r.percent = 0
	r.mtx.Unlock()
}

// Percent returns the current high-water mark.
func (r *Reporter) Percent() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.percent
}

// LogSink logs every event, useful as a default when no UI sink is
// attached.
type LogSink struct{}

// Publish writes the event through the standard logger.
func (LogSink) Publish(event Event) {
	log.Printf("progress %3d%% (%.1fs) %s", event.Percent, event.Elapsed, event.Status)
}
