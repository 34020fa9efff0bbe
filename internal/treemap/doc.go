// Package treemap maps a node tree to host artifacts in three explicit passes.
//
// Cross references (a relationship's first and second, a reference element's
// target) may point at nodes a single depth-first walk has not reached yet,
// so mapping is split into ordered passes over the same frozen tree:
//
//  1. Discover resolves every cross reference through the index and records
//     which nodes take part in a relation. It creates no artifacts.
//  2. Materialize creates an artifact for every node that takes part in a
//     relation or satisfies the caller's Include predicate.
//  3. Link emits containment and relation links between artifacts. A link
//     whose endpoint has no artifact is dropped and counted.
//
// Suppressed subtrees (see Options.Suppress) receive no artifacts and take no
// part in links. Their relations are still resolved in pass 1, so the nodes
// they point at outside the subtree participate. Data problems are recorded as diagnostics on the Result and
// never abort a pass.
//
// The mapper never mutates the tree and keeps no state between runs.
package treemap
