// Package match provides the fuzzy and substring matching used around the
// kernel: suppression lists keyed by IdShort or semantic tag, and
// edit-distance ranking for "did you mean" suggestions on unresolved
// references.
package match
