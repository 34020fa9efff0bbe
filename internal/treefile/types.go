package treefile

import (
	"gopkg.in/yaml.v3"
)

// File is the document root.
type File struct {
	Roots []Entry `yaml:"roots"`
}

// Entry is one serialized node.
type Entry struct {
	Kind        string  `yaml:"kind"`
	IdShort     string  `yaml:"idShort"`
	SemanticID  string  `yaml:"semanticId,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	ValueType   string  `yaml:"valueType,omitempty"`
	First       string  `yaml:"first,omitempty"`
	Second      string  `yaml:"second,omitempty"`
	Target      string  `yaml:"target,omitempty"`
	Children    []Entry `yaml:"children,omitempty"`
	Annotations []Entry `yaml:"annotations,omitempty"`

	// Line is the source line of the entry, when decoded from YAML.
	Line int `yaml:"-"`
}

// UnmarshalYAML records the source line of the entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	type plain Entry

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = Entry(p)
	e.Line = node.Line

	return nil
}
