package document

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/index"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
	"aas-refmap/internal/treemap"
)

// containers own nested content in the document.
var containers = []reference.KeyKind{
	reference.KindAssetAdministrationShell,
	reference.KindSubmodel,
	reference.KindSubmodelElementCollection,
	reference.KindSubmodelElementList,
	reference.KindEntity,
	reference.KindAnnotatedRelationshipElement,
}

// Document is the result of Build.
type Document struct {
	Root  *Object
	Stats treemap.Stats
	// LinksEmitted counts the mapper's emitted links by kind.
	LinksEmitted map[treemap.LinkKind]int
	Dropped      []treemap.DroppedLink
	Diagnostics  *diagnostic.Diagnostics
}

type config struct {
	suppress func(tree.Node) bool
	maxDepth int
	logger   zerolog.Logger
}

// Option configures Build.
type Option func(*config)

// WithSuppress removes matching subtrees from the document.
func WithSuppress(fn func(tree.Node) bool) Option {
	return func(c *config) {
		c.suppress = fn
	}
}

// WithMaxDepth limits nesting; roots have depth 0.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger passed to the mapper.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// slot is the artifact of one node: its document value.
type slot struct {
	node  tree.Node
	value any
}

// Build maps every node below roots into a document. idx must be built over
// roots.
func Build(roots []tree.Node, idx *index.Index, opts ...Option) (*Document, error) {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := treemap.New(treemap.Options[*slot]{
		Index:            idx,
		Factory:          newSlot,
		Include:          func(tree.Node) bool { return true },
		Suppress:         cfg.suppress,
		MaxDepth:         cfg.maxDepth,
		ContainmentKinds: containers,
		Logger:           &cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	res := m.Run(roots)

	for _, l := range res.Links {
		if l.Kind == treemap.LinkContainment {
			l.From.add(l.To)
		}
	}

	doc := &Document{
		Root:         NewObject(),
		Stats:        res.Stats,
		LinksEmitted: res.LinksByKind(),
		Dropped:      res.Dropped,
		Diagnostics:  res.Diagnostics,
	}

	for _, r := range roots {
		if s, ok := res.Artifact(r); ok && s != nil {
			doc.Root.Set(r.IdShort(), s.value)
		}
	}

	return doc, nil
}

func newSlot(n tree.Node, _ string, _ treemap.Hints) (*slot, error) {
	s := &slot{node: n}

	switch v := n.(type) {
	case *tree.Relationship:
		o := NewObject()
		o.Set("first", v.First().String())
		o.Set("second", v.Second().String())
		s.value = o
	case *tree.ReferenceElement:
		s.value = v.Target().String()
	case tree.Valued:
		s.value = scalar(v.Value(), v.ValueType())
	default:
		if n.Kind() == reference.KindSubmodelElementList {
			s.value = &List{}
		} else {
			s.value = NewObject()
		}
	}

	return s, nil
}

func (s *slot) add(child *slot) {
	switch v := s.value.(type) {
	case *List:
		v.Append(child.value)
	case *Object:
		if s.node.Kind() == reference.KindAnnotatedRelationshipElement {
			ann, ok := v.Get("annotations")
			if !ok {
				ann = NewObject()
				v.Set("annotations", ann)
			}

			ann.(*Object).Set(child.node.IdShort(), child.value)

			return
		}

		v.Set(child.node.IdShort(), child.value)
	}
}

// scalar converts a value to the Go type matching its XSD value type.
// Values that do not parse stay strings.
func scalar(value, valueType string) any {
	t := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(valueType), "xs:"))

	switch t {
	case "int", "integer", "long", "short", "byte":
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	case "double", "float", "decimal":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}

	return value
}
