package treefile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
)

const stage = "load"

// LoadFile reads and builds the tree stored at path.
func LoadFile(path string) ([]tree.Node, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes YAML data and builds the tree. source names the data in
// diagnostics.
func Parse(data []byte, source string) ([]tree.Node, *diagnostic.Diagnostics, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("failed to parse tree YAML %s: %w", source, err)
	}

	b := builder{source: source, diags: diagnostic.New()}

	return b.entries(f.Roots, ""), b.diags, nil
}

type builder struct {
	source string
	diags  *diagnostic.Diagnostics
}

func (b *builder) entries(entries []Entry, parent string) []tree.Node {
	var nodes []tree.Node

	for i := range entries {
		if n := b.entry(&entries[i], parent); n != nil {
			nodes = append(nodes, n)
		}
	}

	return nodes
}

func (b *builder) entry(e *Entry, parent string) tree.Node {
	kind, err := reference.ParseKind(e.Kind)
	if err != nil {
		b.malformed(e, parent, err.Error())
		return nil
	}

	if strings.TrimSpace(e.IdShort) == "" {
		b.malformed(e, parent, "missing idShort")
		return nil
	}

	path := parent + "/" + e.IdShort

	var opts []tree.Option

	if e.SemanticID != "" {
		sem, err := reference.Parse(e.SemanticID)
		if err != nil {
			b.malformed(e, path, "ignoring semanticId: "+err.Error())
		} else {
			opts = append(opts, tree.WithSemantic(sem))
		}
	}

	switch kind {
	case reference.KindSubmodel, reference.KindSubmodelElementCollection, reference.KindSubmodelElementList,
		reference.KindEntity, reference.KindAssetAdministrationShell:
		return tree.NewCollection(kind, e.IdShort, opts...).Add(b.entries(e.Children, path)...)

	case reference.KindRelationshipElement, reference.KindAnnotatedRelationshipElement:
		first, errFirst := reference.Parse(e.First)
		second, errSecond := reference.Parse(e.Second)

		if errFirst != nil || errSecond != nil {
			b.malformed(e, path, fmt.Sprintf("relationship %q needs valid first and second references", e.IdShort))
			return nil
		}

		if kind == reference.KindRelationshipElement {
			return tree.NewRelationship(e.IdShort, first, second, opts...)
		}

		return tree.NewAnnotatedRelationship(e.IdShort, first, second, b.entries(e.Annotations, path), opts...)

	case reference.KindReferenceElement:
		target, err := reference.Parse(e.Target)
		if err != nil {
			b.malformed(e, path, fmt.Sprintf("reference element %q: %v", e.IdShort, err))
			return nil
		}

		return tree.NewReferenceElement(e.IdShort, target, opts...)

	case reference.KindGlobalReference, reference.KindConceptDescription, reference.KindFragmentReference:
		b.malformed(e, path, fmt.Sprintf("kind %s cannot appear in a tree", kind))
		return nil
	}

	if len(e.Children) > 0 {
		b.malformed(e, path, fmt.Sprintf("%s cannot own children; ignoring %d", kind, len(e.Children)))
	}

	return tree.NewLeaf(kind, e.IdShort, e.Value, opts...).SetValueType(e.ValueType)
}

func (b *builder) malformed(e *Entry, path, msg string) {
	if path == "" {
		path = "/"
	}

	loc := b.source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", b.source, e.Line)
	}

	b.diags.AddWarning(diagnostic.CodeMalformedNode, fmt.Sprintf("%s: %s", loc, msg), stage, path)
}
