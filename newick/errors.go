package newick

import "fmt"

// ParseError is the base error type for all parsing errors. It is used
// directly for grammar violations (unbalanced parentheses, misplaced commas,
// non-numeric branch lengths, trailing content).
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a tokenizer-level error (unterminated quote or comment,
// stray closing bracket).
type LexError struct{ ParseError }

// ValueError represents an invalid argument to a node constructor or a
// structural operation (reserved punctuation in an unquoted name).
type ValueError struct{ ParseError }

// OwnershipError is returned when attaching a node would violate tree
// ownership: the node already has an ancestor, or the attachment would
// create a cycle.
type OwnershipError struct {
	Message string
}

func (e *OwnershipError) Error() string { return e.Message }
