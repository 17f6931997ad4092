// Package metrics exports search statistics as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders (one per test,
// one per CLI run) never collide on the global default registry. The CLI
// dumps the registry in the node-exporter textfile format after a run.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lpath/longest"
)

const (
	namespace = "lpath"
	subsystem = "search"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeComplete    = "complete"
	OutcomeInterrupted = "interrupted"
	OutcomeError       = "error"
)

// Recorder turns longest.Result values into Prometheus series labelled by
// strategy. It is safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	runs         *prometheus.CounterVec
	extensions   *prometheus.CounterVec
	backtracks   *prometheus.CounterVec
	pruned       *prometheus.CounterVec
	oracleCalls  *prometheus.CounterVec
	improvements *prometheus.CounterVec
	bestLength   *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
}

// NewRecorder registers every series on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	byStrategy := []string{"strategy"}

	counter := func(name, help string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, byStrategy)
	}

	return &Recorder{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		extensions:   counter("extensions_total", "Vertices pushed onto the path"),
		backtracks:   counter("backtracks_total", "Maximal-path checks at backtrack points"),
		pruned:       counter("pruned_total", "Candidate edges skipped by a bound"),
		oracleCalls:  counter("oracle_calls_total", "Reachability bound evaluations"),
		improvements: counter("improvements_total", "Strict improvements of the best path"),
		bestLength: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_length_edges",
			Help:      "Length in edges of the best path of the last search",
		}, byStrategy),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of a search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, byStrategy),
	}
}

// Observe records one search. err is the error returned with res by
// longest.Solve; an interrupted search still contributes its statistics.
func (r *Recorder) Observe(res longest.Result, err error) {
	s := res.Strategy.String()
	outcome := OutcomeComplete
	switch {
	case errors.Is(err, longest.ErrInterrupted):
		outcome = OutcomeInterrupted
	case err != nil:
		r.runs.WithLabelValues(s, OutcomeError).Inc()
		return
	}

	r.runs.WithLabelValues(s, outcome).Inc()
	r.extensions.WithLabelValues(s).Add(float64(res.Stats.Extensions))
	r.backtracks.WithLabelValues(s).Add(float64(res.Stats.Backtracks))
	r.pruned.WithLabelValues(s).Add(float64(res.Stats.Pruned))
	r.oracleCalls.WithLabelValues(s).Add(float64(res.Stats.OracleCalls))
	r.improvements.WithLabelValues(s).Add(float64(res.Stats.Improvements))
	r.bestLength.WithLabelValues(s).Set(float64(res.Edges()))
	r.duration.WithLabelValues(s).Observe(res.Elapsed.Seconds())
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every series to path in the text exposition format.
// The file is written atomically (temporary file plus rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
