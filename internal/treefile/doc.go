// Package treefile reads and writes element trees as YAML.
//
// A file holds a list of roots; each entry names its kind and idShort and,
// depending on the kind, a value, children, relationship ends or a target
// reference:
//
//	roots:
//	  - kind: Submodel
//	    idShort: SM1
//	    children:
//	      - kind: Property
//	        idShort: title
//	        value: Sensor A
//	      - kind: RelationshipElement
//	        idShort: rel
//	        first: (Submodel)SM1,(Property)title
//	        second: (Submodel)SM1
//
// Entries that cannot be turned into nodes are skipped together with their
// subtree and reported as diagnostics. Loading fails only on I/O errors and
// YAML that does not fit the file structure.
package treefile
