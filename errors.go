package downsize

import "github.com/KimNorgaard/go-downsize/errors"

type (
	// ParseError reports input text that is not well-formed JSON.
	ParseError = errors.ParseError
	// SerializeError reports a value that cannot be written as JSON text.
	SerializeError = errors.SerializeError
	// DepthExceededError reports input nested deeper than MaxDepth.
	DepthExceededError = errors.DepthExceededError
)

// ErrDepthExceeded matches any *DepthExceededError through errors.Is.
var ErrDepthExceeded = errors.ErrDepthExceeded
