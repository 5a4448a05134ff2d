// Package metrics records the shape of generated matchers as Prometheus
// gauges. The CLI has no long-running process to scrape, so the registry is
// written out in the node_exporter textfile format after a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/matchgen/pkg/trie"
)

// Recorder holds the gauges of one generation run.
type Recorder struct {
	registry *prometheus.Registry

	entries     *prometheus.GaugeVec
	nodes       *prometheus.GaugeVec
	depth       *prometheus.GaugeVec
	keyBytes    *prometheus.GaugeVec
	outputBytes *prometheus.GaugeVec
	duration    *prometheus.GaugeVec
	lastRun     prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	labels := []string{"func", "strategy"}
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "matchgen",
			Name:      name,
			Help:      help,
		}, labels)
	}

	r := &Recorder{
		registry:    prometheus.NewRegistry(),
		entries:     gauge("entries", "Number of registered sequences."),
		nodes:       gauge("trie_nodes", "Number of trie nodes, root included."),
		depth:       gauge("trie_max_depth", "Length of the longest sequence."),
		keyBytes:    gauge("key_bytes", "Total length of all sequences."),
		outputBytes: gauge("output_bytes", "Size of the generated source."),
		duration:    gauge("render_duration_seconds", "Time spent rendering the matcher."),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "matchgen",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last generation run.",
		}),
	}
	r.registry.MustRegister(r.entries, r.nodes, r.depth, r.keyBytes, r.outputBytes, r.duration, r.lastRun)
	return r
}

// Run is what a single render produced.
type Run struct {
	Func        string
	Strategy    string
	Stats       trie.Stats
	OutputBytes int
	Duration    time.Duration
	At          time.Time
}

// Observe records run.
func (r *Recorder) Observe(run Run) {
	lv := []string{run.Func, run.Strategy}
	r.entries.WithLabelValues(lv...).Set(float64(run.Stats.Entries))
	r.nodes.WithLabelValues(lv...).Set(float64(run.Stats.Nodes))
	r.depth.WithLabelValues(lv...).Set(float64(run.Stats.MaxDepth))
	r.keyBytes.WithLabelValues(lv...).Set(float64(run.Stats.KeyBytes))
	r.outputBytes.WithLabelValues(lv...).Set(float64(run.OutputBytes))
	r.duration.WithLabelValues(lv...).Set(run.Duration.Seconds())
	if !run.At.IsZero() {
		r.lastRun.Set(float64(run.At.Unix()))
	}
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path, replacing it atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
