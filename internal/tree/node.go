package tree

import (
	"reflect"

	"aas-refmap/internal/reference"
)

// Shape tags the payload variant carried by a Node.
type Shape int

const (
	_ Shape = iota

	ShapeLeaf
	ShapeCollection
	ShapeRelationship
	ShapeReferenceElement
)

// String returns the lower-case shape name used in configs and expressions.
func (s Shape) String() string {
	switch s {
	case ShapeLeaf:
		return "leaf"
	case ShapeCollection:
		return "collection"
	case ShapeRelationship:
		return "relationship"
	case ShapeReferenceElement:
		return "reference"
	default:
		return "unknown"
	}
}

// Cross reference roles.
const (
	RoleFirst  = "first"
	RoleSecond = "second"
	RoleTarget = "target"
)

// CrossRef is a navigational reference held by a node.
type CrossRef struct {
	Role string
	Ref  reference.Reference
}

// Node is the capability set every tree element provides.
type Node interface {
	// IdShort is unique among siblings only.
	IdShort() string
	// SemanticTag classifies the node; it is not used for navigation.
	SemanticTag() (reference.Reference, bool)
	Kind() reference.KeyKind
	Shape() Shape
	// Children returns the owned child nodes in order. May be nil.
	Children() []Node
	// CrossReferences returns the references to other nodes, if any.
	CrossReferences() []CrossRef
}

// Valued is implemented by nodes carrying a scalar value.
type Valued interface {
	Value() string
	ValueType() string
}

// IsNil reports whether n is nil or an interface holding a nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// KeyOf returns the path key that addresses n below its parent.
func KeyOf(n Node) reference.PathKey {
	return reference.Key(n.Kind(), n.IdShort())
}

// Option configures common node attributes.
type Option func(*element)

// WithSemantic sets the semantic tag.
func WithSemantic(ref reference.Reference) Option {
	return func(e *element) {
		e.semantic = ref
	}
}

type element struct {
	idShort  string
	kind     reference.KeyKind
	semantic reference.Reference
}

func newElement(kind reference.KeyKind, idShort string, opts []Option) element {
	e := element{idShort: idShort, kind: kind}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (e *element) IdShort() string { return e.idShort }

func (e *element) Kind() reference.KeyKind { return e.kind }

func (e *element) SemanticTag() (reference.Reference, bool) {
	return e.semantic, !e.semantic.IsEmpty()
}
