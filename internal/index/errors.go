package index

import (
	"errors"
	"fmt"

	"aas-refmap/internal/reference"
)

// ErrNotIndexed is returned when a node has no recorded path.
var ErrNotIndexed = errors.New("node is not indexed")

// InvariantError reports a broken equality/hash contract. It is a programming
// error, not a data error, and is raised with panic.
type InvariantError struct {
	Query     reference.Reference
	Candidate reference.Reference
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("reference invariant violated: %s (query %s, candidate %s)",
		e.Reason, e.Query, e.Candidate)
}

// checkContract panics if structural equality and canonical equality disagree.
func checkContract(query, candidate reference.Reference) bool {
	equal := query.Equal(candidate)
	canonical := query.Canonical() == candidate.Canonical()

	if equal != canonical {
		panic(&InvariantError{
			Query:     query,
			Candidate: candidate,
			Reason:    "Equal and Canonical disagree",
		})
	}

	return equal
}
