package tree

import (
	"aas-refmap/internal/reference"
)

// Leaf is a scalar element such as a Property or a File.
type Leaf struct {
	element
	value     string
	valueType string
}

// NewLeaf creates a leaf of the given kind.
func NewLeaf(kind reference.KeyKind, idShort, value string, opts ...Option) *Leaf {
	return &Leaf{element: newElement(kind, idShort, opts), value: value}
}

// NewProperty creates a Property leaf.
func NewProperty(idShort, value string, opts ...Option) *Leaf {
	return NewLeaf(reference.KindProperty, idShort, value, opts...)
}

// SetValueType sets the declared value type (e.g. "xs:string") and returns l.
func (l *Leaf) SetValueType(valueType string) *Leaf {
	l.valueType = valueType
	return l
}

func (l *Leaf) Value() string { return l.value }

func (l *Leaf) ValueType() string { return l.valueType }

func (l *Leaf) Shape() Shape { return ShapeLeaf }

func (l *Leaf) Children() []Node { return nil }

func (l *Leaf) CrossReferences() []CrossRef { return nil }

// Collection is a container: Submodel, SubmodelElementCollection,
// SubmodelElementList or Entity.
type Collection struct {
	element
	children []Node
}

// NewCollection creates an empty container of the given kind.
func NewCollection(kind reference.KeyKind, idShort string, opts ...Option) *Collection {
	return &Collection{element: newElement(kind, idShort, opts)}
}

// NewSubmodel creates an empty Submodel.
func NewSubmodel(idShort string, opts ...Option) *Collection {
	return NewCollection(reference.KindSubmodel, idShort, opts...)
}

// Add appends children and returns c. Any index built over the tree must be
// rebuilt afterwards.
func (c *Collection) Add(children ...Node) *Collection {
	c.children = append(c.children, children...)
	return c
}

func (c *Collection) Shape() Shape { return ShapeCollection }

func (c *Collection) Children() []Node { return c.children }

func (c *Collection) CrossReferences() []CrossRef { return nil }

// Relationship links two nodes. Annotated relationships may own annotation
// children.
type Relationship struct {
	element
	first       reference.Reference
	second      reference.Reference
	annotations []Node
}

// NewRelationship creates a RelationshipElement.
func NewRelationship(idShort string, first, second reference.Reference, opts ...Option) *Relationship {
	return &Relationship{
		element: newElement(reference.KindRelationshipElement, idShort, opts),
		first:   first,
		second:  second,
	}
}

// NewAnnotatedRelationship creates an AnnotatedRelationshipElement.
func NewAnnotatedRelationship(
	idShort string,
	first, second reference.Reference,
	annotations []Node,
	opts ...Option,
) *Relationship {
	return &Relationship{
		element:     newElement(reference.KindAnnotatedRelationshipElement, idShort, opts),
		first:       first,
		second:      second,
		annotations: annotations,
	}
}

func (r *Relationship) First() reference.Reference { return r.first }

func (r *Relationship) Second() reference.Reference { return r.second }

func (r *Relationship) Shape() Shape { return ShapeRelationship }

func (r *Relationship) Children() []Node { return r.annotations }

func (r *Relationship) CrossReferences() []CrossRef {
	return []CrossRef{
		{Role: RoleFirst, Ref: r.first},
		{Role: RoleSecond, Ref: r.second},
	}
}

// ReferenceElement points at one other node.
type ReferenceElement struct {
	element
	target reference.Reference
}

// NewReferenceElement creates a ReferenceElement.
func NewReferenceElement(idShort string, target reference.Reference, opts ...Option) *ReferenceElement {
	return &ReferenceElement{
		element: newElement(reference.KindReferenceElement, idShort, opts),
		target:  target,
	}
}

func (r *ReferenceElement) Target() reference.Reference { return r.target }

func (r *ReferenceElement) Shape() Shape { return ShapeReferenceElement }

func (r *ReferenceElement) Children() []Node { return nil }

func (r *ReferenceElement) CrossReferences() []CrossRef {
	return []CrossRef{{Role: RoleTarget, Ref: r.target}}
}
