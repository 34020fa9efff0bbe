// Package index resolves References to the nodes they address.
//
// Index walks a forest once, computing each node's Reference by appending its
// key to the parent's path. Paths are immutable values handed down the call
// stack, so sibling subtrees never observe each other's segments. Entries are
// bucketed by the xxhash of the canonical path and disambiguated by structural
// comparison; the hash only pre-filters.
//
// Lookups never fail loudly: an unresolved reference simply reports false and
// callers decide how to record it. The only panic is *InvariantError, raised
// when Equal and the canonical form disagree, which means the equality
// contract of package reference is broken.
//
// The index must be rebuilt whenever a node is added, removed or renamed.
// It is not safe for concurrent use with Index.
package index
