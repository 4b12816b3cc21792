package downsize

import (
	"github.com/KimNorgaard/go-downsize/internal/codec"
	"github.com/KimNorgaard/go-downsize/internal/normalize"
	"github.com/KimNorgaard/go-downsize/internal/reorder"
	"github.com/KimNorgaard/go-downsize/value"
)

// Shape selects how Normalize and Rebuild represent keyed containers.
type Shape = normalize.Shape

const (
	// MapShape represents records as map[string]any.
	MapShape = normalize.MapShape
	// RecordShape represents records as *orderedmap.OrderedMap[string, any]
	// from github.com/wk8/go-ordered-map/v2, keeping field order.
	RecordShape = normalize.RecordShape
)

// Reorder returns a copy of v whose records have their fields grouped by
// value type: numbers, then booleans, then nulls, then lists and records,
// then strings. Order within each group is kept. Lists, and records keyed
// "0", "1", ..., "n-1" in any order, are never reordered themselves but
// their elements are.
//
// The only possible error is a *DepthExceededError.
func Reorder(v value.Value, opts ...Option) (value.Value, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return reorder.Reorder(v, o.maxDepth)
}

// Parse decodes JSON text into a value.Value, keeping object member order
// and the exact text of every number.
func Parse(data []byte, opts ...Option) (value.Value, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return codec.Parse(data, o.maxDepth)
}

// Marshal returns the JSON encoding of v with fields in their stored order.
func Marshal(v value.Value, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return codec.Serialize(v, o.indent, o.maxDepth)
}

// Normalize converts v into plain Go values. Records become map[string]any
// or ordered maps depending on shape and any PinShape options; list-like
// containers, including empty records, become []any.
//
// Numbers become int64 when the literal is an integer that fits, float64
// when the literal converts without loss, and value.Number otherwise or
// when UseNumber is given.
func Normalize(v value.Value, shape Shape, opts ...Option) (any, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(v, o.policy(shape))
}
