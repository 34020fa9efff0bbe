package label

import (
	"aas-refmap/internal/tree"
)

// For returns the wrapped label of n. With showValues, scalar nodes render as
// "idShort = value".
func For(n tree.Node, showValues bool, maxColumn int) string {
	text := n.IdShort()

	if showValues {
		if v, ok := n.(tree.Valued); ok && v.Value() != "" {
			text += " = " + v.Value()
		}
	}

	return Wrap(text, maxColumn)
}
