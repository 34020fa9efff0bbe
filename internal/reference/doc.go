// Package reference models typed key paths that address nodes in an AAS tree.
//
// A Reference is an ordered list of PathKeys, for example
//
//	(Submodel)SM1,(SubmodelElementCollection)Interface,(Property)title
//
// Keys compare by kind and by trimmed, case-folded value. References are
// immutable values: Append and Parent return new references, so a path held
// by one caller is never changed by another caller extending it.
//
// Canonical and Hash are derived from the same normalization as Equal, which
// keeps hash-bucketed lookups consistent with structural comparison.
package reference
