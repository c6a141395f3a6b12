// Package errors holds the failure taxonomy of the catalog service.
// The messages of the business errors double as the plain-text bodies
// of the external contract, so they must never be reworded.
package errors

import "fmt"

var (
	// Expected business outcomes, mapped to plain-text responses.
	ErrMissingTitle   = fmt.Errorf("missing required field title")
	ErrMissingComment = fmt.Errorf("missing required field comment")
	ErrBookNotFound   = fmt.Errorf("no book exists")

	// Infrastructure failures, surfaced as 500-class responses.
	ErrAmbiguousBookID   = fmt.Errorf("book id matches more than one record")
	ErrTooMuchContention = fmt.Errorf("comment append retry budget exhausted")
)
