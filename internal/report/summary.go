package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"aas-refmap/internal/common"
	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/treemap"
)

type palette struct {
	ok, warn, err, dim *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		err:  color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.ok, p.warn, p.err, p.dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) severity(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.SeverityError:
		return p.err
	case diagnostic.SeverityWarning:
		return p.warn
	default:
		return p.dim
	}
}

// Summary writes a one-line run summary followed by warnings and errors.
func Summary(w io.Writer, stats treemap.Stats, diags *diagnostic.Diagnostics, colored bool) error {
	p := newPalette(colored)

	status := p.ok
	if stats.LinksDropped > 0 || stats.UnresolvedRefs > 0 || stats.ArtifactFailures > 0 {
		status = p.warn
	}

	if diags != nil && diags.HasErrors() {
		status = p.err
	}

	_, err := status.Fprintf(w, "%d nodes, %d artifacts, %d/%d links (%d dropped), %d unresolved, %d suppressed\n",
		stats.NodesVisited, stats.ArtifactsCreated, stats.LinksEmitted, stats.LinksRequested,
		stats.LinksDropped, stats.UnresolvedRefs, stats.SuppressedNodes)
	if err != nil {
		return err
	}

	if diags == nil {
		return nil
	}

	notable := common.Filter(diags.All(), func(d diagnostic.Diagnostic) bool {
		return d.Severity != diagnostic.SeverityInfo
	})

	for _, d := range notable {
		label := p.severity(d.Severity).Sprintf("%-7s", d.Severity)
		if _, err := fmt.Fprintf(w, "  %s %s\n", label, d); err != nil {
			return err
		}
	}

	return nil
}
