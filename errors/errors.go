// Package errors holds the error types reported by downsize.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrDepthExceeded is matched by every *DepthExceededError through errors.Is.
var ErrDepthExceeded = stderrors.New("downsize: max depth exceeded")

// ParseError reports input text that is not well-formed JSON.
// Offset is the byte offset into the input where decoding stopped.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("downsize: parsing error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError reports a value that cannot be written as JSON text, such
// as a NaN number or a record holding the same key twice.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return "downsize: serialization error: " + e.Err.Error()
}

func (e *SerializeError) Unwrap() error { return e.Err }

// DepthExceededError reports input nested deeper than the configured limit.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("downsize: reached max recursion depth %d", e.Limit)
}

func (e *DepthExceededError) Is(target error) bool {
	return target == ErrDepthExceeded
}
