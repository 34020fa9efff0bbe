// Package report encodes mapping results for the command line tool.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/index"
	"aas-refmap/internal/tree"
	"aas-refmap/internal/treemap"
)

// Report is the serializable form of a graph mapping run.
type Report struct {
	Nodes       []*treemap.GraphNode    `yaml:"nodes" json:"nodes"`
	Links       []Link                  `yaml:"links" json:"links"`
	Dropped     []Dropped               `yaml:"dropped,omitempty" json:"dropped,omitempty"`
	Stats       treemap.Stats           `yaml:"stats" json:"stats"`
	Diagnostics *diagnostic.Diagnostics `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

// Link connects two graph nodes by ID.
type Link struct {
	Kind string    `yaml:"kind" json:"kind"`
	From uuid.UUID `yaml:"from" json:"from"`
	To   uuid.UUID `yaml:"to" json:"to"`
	Via  string    `yaml:"via,omitempty" json:"via,omitempty"`
}

// Dropped describes a link that was requested but not emitted.
type Dropped struct {
	Kind   string `yaml:"kind" json:"kind"`
	Reason string `yaml:"reason" json:"reason"`
	Via    string `yaml:"via,omitempty" json:"via,omitempty"`
	From   string `yaml:"from,omitempty" json:"from,omitempty"`
	To     string `yaml:"to,omitempty" json:"to,omitempty"`
}

// New converts a result into a Report. idx supplies the paths of nodes that
// have no artifact.
func New(res *treemap.Result[*treemap.GraphNode], idx *index.Index) *Report {
	r := &Report{
		Nodes:       res.ArtifactsInOrder(),
		Links:       make([]Link, 0, len(res.Links)),
		Stats:       res.Stats,
		Diagnostics: res.Diagnostics,
	}

	for _, l := range res.Links {
		r.Links = append(r.Links, Link{
			Kind: l.Kind.String(),
			From: l.From.ID,
			To:   l.To.ID,
			Via:  pathOf(idx, l.Via),
		})
	}

	for _, d := range res.Dropped {
		r.Dropped = append(r.Dropped, Dropped{
			Kind:   d.Kind.String(),
			Reason: d.Reason,
			Via:    pathOf(idx, d.Via),
			From:   pathOf(idx, d.From),
			To:     pathOf(idx, d.To),
		})
	}

	return r
}

func pathOf(idx *index.Index, n tree.Node) string {
	if n == nil {
		return ""
	}

	if ref, ok := idx.ReferenceOf(n); ok {
		return ref.String()
	}

	return n.IdShort()
}

// Write encodes v as YAML or JSON.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
