// Package metrics exposes Prometheus counters for indexing and mapping runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the collectors of one process.
type Registry struct {
	registry *prometheus.Registry

	IndexedNodes       prometheus.Gauge
	RunsTotal          prometheus.Counter
	RunDuration        prometheus.Histogram
	NodesVisited       prometheus.Counter
	ArtifactsCreated   prometheus.Counter
	ArtifactFailures   prometheus.Counter
	SuppressedNodes    prometheus.Counter
	MalformedNodes     prometheus.Counter
	UnresolvedRefs     prometheus.Counter
	LinksEmitted       *prometheus.CounterVec
	LinksDropped       *prometheus.CounterVec
	DiagnosticsEmitted *prometheus.CounterVec
}

// NewRegistry creates a Registry backed by its own prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.IndexedNodes = f.NewGauge(prometheus.GaugeOpts{
		Name: "refmap_indexed_nodes",
		Help: "Number of nodes in the reference index",
	})

	r.RunsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_runs_total",
		Help: "Total number of mapping runs",
	})

	r.RunDuration = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "refmap_run_duration_seconds",
		Help:    "Mapping run duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	})

	r.NodesVisited = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_nodes_visited_total",
		Help: "Nodes visited during materialization",
	})

	r.ArtifactsCreated = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_artifacts_created_total",
		Help: "Artifacts created by the factory",
	})

	r.ArtifactFailures = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_artifact_failures_total",
		Help: "Artifact factory failures",
	})

	r.SuppressedNodes = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_suppressed_nodes_total",
		Help: "Nodes inside suppressed subtrees",
	})

	r.MalformedNodes = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_malformed_nodes_total",
		Help: "Nodes skipped because they were not indexed",
	})

	r.UnresolvedRefs = f.NewCounter(prometheus.CounterOpts{
		Name: "refmap_unresolved_references_total",
		Help: "Cross references that resolved to no node",
	})

	r.LinksEmitted = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refmap_links_emitted_total",
			Help: "Links emitted in the linking pass",
		},
		[]string{"kind"},
	)

	r.LinksDropped = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refmap_links_dropped_total",
			Help: "Requested links that were not emitted",
		},
		[]string{"kind", "reason"},
	)

	r.DiagnosticsEmitted = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refmap_diagnostics_total",
			Help: "Diagnostics produced, by severity and code",
		},
		[]string{"severity", "code"},
	)

	return r
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
