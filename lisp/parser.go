package lisp

import "io"

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of top-level LVals
	// that it contains.
	Read(name string, r io.Reader) ([]*LVal, error)
}
