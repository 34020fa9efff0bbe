// Package document exports a tree as a nested, ordered document. Containers
// become objects keyed by idShort, lists become arrays, scalars become
// typed values and relationships become objects holding the textual form of
// their references.
package document
