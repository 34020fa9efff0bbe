package metrics

import (
	"time"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/treemap"
)

// RecordIndex records the size of a freshly built index.
func (r *Registry) RecordIndex(nodes int) {
	r.IndexedNodes.Set(float64(nodes))
}

// RecordDiagnostics counts diagnostics by severity and code.
func (r *Registry) RecordDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.All() {
		r.DiagnosticsEmitted.WithLabelValues(d.Severity.String(), d.Code).Inc()
	}
}

// RecordRun records the outcome of one mapping run.
func RecordRun[A any](r *Registry, res *treemap.Result[A], elapsed time.Duration) {
	r.RecordStats(res.Stats, elapsed)
	r.RecordLinks(res.LinksByKind(), res.Dropped)
	r.RecordDiagnostics(res.Diagnostics)
}

// RecordStats records the counters of one run.
func (r *Registry) RecordStats(s treemap.Stats, elapsed time.Duration) {
	r.RunsTotal.Inc()
	r.RunDuration.Observe(elapsed.Seconds())
	r.NodesVisited.Add(float64(s.NodesVisited))
	r.ArtifactsCreated.Add(float64(s.ArtifactsCreated))
	r.ArtifactFailures.Add(float64(s.ArtifactFailures))
	r.SuppressedNodes.Add(float64(s.SuppressedNodes))
	r.MalformedNodes.Add(float64(s.MalformedNodes))
	r.UnresolvedRefs.Add(float64(s.UnresolvedRefs))
}

// RecordLinks counts emitted links by kind and dropped links by kind and
// reason.
func (r *Registry) RecordLinks(emitted map[treemap.LinkKind]int, dropped []treemap.DroppedLink) {
	for kind, n := range emitted {
		r.LinksEmitted.WithLabelValues(kind.String()).Add(float64(n))
	}

	for _, d := range dropped {
		r.LinksDropped.WithLabelValues(d.Kind.String(), d.Reason).Inc()
	}
}
