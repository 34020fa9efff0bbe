// Package diagnostic aggregates data-level findings produced while loading,
// indexing and mapping a tree.
//
// Findings never abort a pass. They are collected with a stable code so that
// callers and tests can tell an unresolved reference from a suppressed subtree
// or a malformed node:
//   - unresolved_reference: a cross reference matched no indexed node
//   - malformed_node: a node was skipped because a required field was missing
//   - duplicate_path: two nodes share the same reference path
//   - suppressed_subtree: a subtree was left out on purpose
//   - artifact_failed: the artifact factory rejected a node
//   - link_dropped: a requested link lacked an endpoint artifact
package diagnostic
