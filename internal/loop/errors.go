package loop

import "fmt"

// PositionError is a structural error tied to a single bracket in the source.
type PositionError interface {
	error
	Position() int
}

// UnmatchedCloseError reports a ']' with no preceding unmatched '['.
type UnmatchedCloseError struct {
	Pos int
}

func (e *UnmatchedCloseError) Error() string {
	return fmt.Sprintf("found ']' at position %d, but no matching '[' was found", e.Pos)
}

func (e *UnmatchedCloseError) Position() int {
	return e.Pos
}

func NewUnmatchedCloseError(pos int) *UnmatchedCloseError {
	return &UnmatchedCloseError{Pos: pos}
}

// UnmatchedOpenError reports a '[' that is never closed.
type UnmatchedOpenError struct {
	Pos int
}

func (e *UnmatchedOpenError) Error() string {
	return fmt.Sprintf("found '[' at position %d, but no matching ']' was found", e.Pos)
}

func (e *UnmatchedOpenError) Position() int {
	return e.Pos
}

func NewUnmatchedOpenError(pos int) *UnmatchedOpenError {
	return &UnmatchedOpenError{Pos: pos}
}
