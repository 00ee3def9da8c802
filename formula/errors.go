package formula

import "fmt"

// ParseError is the "parse-error kind" spec.md §1 delegates to the
// external parser: any malformed formula text, reported with the byte
// offset where the parser gave up.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("formula parse error at %d: %s", e.Pos, e.Message)
}
