package treefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"aas-refmap/internal/tree"
)

// Encode converts nodes back into entries.
func Encode(roots []tree.Node) File {
	return File{Roots: encodeAll(roots)}
}

func encodeAll(nodes []tree.Node) []Entry {
	var entries []Entry

	for _, n := range nodes {
		if tree.IsNil(n) {
			continue
		}

		entries = append(entries, encode(n))
	}

	return entries
}

func encode(n tree.Node) Entry {
	e := Entry{Kind: n.Kind().String(), IdShort: n.IdShort()}

	if sem, ok := n.SemanticTag(); ok {
		e.SemanticID = sem.String()
	}

	switch v := n.(type) {
	case *tree.Leaf:
		e.Value = v.Value()
		e.ValueType = v.ValueType()
	case *tree.Collection:
		e.Children = encodeAll(v.Children())
	case *tree.Relationship:
		e.First = v.First().String()
		e.Second = v.Second().String()
		e.Annotations = encodeAll(v.Children())
	case *tree.ReferenceElement:
		e.Target = v.Target().String()
	}

	return e
}

// Marshal serializes nodes to YAML.
func Marshal(roots []tree.Node) ([]byte, error) {
	f := Encode(roots)
	return yaml.Marshal(&f)
}

// WriteFile writes nodes to the given path.
func WriteFile(roots []tree.Node, path string) error {
	data, err := Marshal(roots)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tree file %s: %w", path, err)
	}

	return nil
}
