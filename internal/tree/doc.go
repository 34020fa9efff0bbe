// Package tree defines the node capability set consumed by the index and the
// mapper, together with the concrete AAS element variants.
//
// Every node reports a Shape that tags its payload:
//   - ShapeLeaf: scalar value (Property, File, Range, ...)
//   - ShapeCollection: ordered children (Submodel, SubmodelElementCollection, Entity)
//   - ShapeRelationship: two cross references, first and second
//   - ShapeReferenceElement: one cross reference, target
//
// Nodes are owned by exactly one parent and the tree has no cycles. Code that
// needs the payload switches on Shape and uses the narrow capability
// interfaces (Valued) instead of probing concrete types.
package tree
