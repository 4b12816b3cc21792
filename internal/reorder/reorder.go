// Package reorder regroups record fields by value type so that a
// general-purpose compressor finds longer repeated runs in the serialized
// text.
package reorder

import (
	"github.com/KimNorgaard/go-downsize/errors"
	"github.com/KimNorgaard/go-downsize/value"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1000

// bucket is one of the type groups a record field is sorted into. The
// declaration order is the output order.
type bucket int

const (
	numbers bucket = iota
	booleans
	nulls
	containers
	strings
	numBuckets
)

func bucketOf(v value.Value) bucket {
	switch v.(type) {
	case value.Number:
		return numbers
	case value.Bool:
		return booleans
	case value.Null:
		return nulls
	case *value.List, *value.Record:
		return containers
	default:
		return strings
	}
}

// Reorder returns a copy of v in which every record that is not list-like
// has its fields grouped as numbers, booleans, nulls, containers, strings.
// Relative order inside a group is kept. Lists, and records keyed "0".."n-1"
// in any order, keep their order and are only descended into. v itself is
// not modified.
//
// A container nested deeper than maxDepth yields a *errors.DepthExceededError.
func Reorder(v value.Value, maxDepth int) (value.Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	r := &reorderer{limit: maxDepth}
	return r.reorder(v)
}

type reorderer struct {
	limit int
	depth int
}

func (r *reorderer) reorder(v value.Value) (value.Value, error) {
	if !value.IsContainer(v) {
		return v, nil
	}

	r.depth++
	if r.depth > r.limit {
		return nil, &errors.DepthExceededError{Limit: r.limit}
	}
	defer func() { r.depth-- }()

	switch n := v.(type) {
	case *value.List:
		elems := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			out, err := r.reorder(el)
			if err != nil {
				return nil, err
			}
			elems[i] = out
		}
		return value.NewList(elems...), nil
	case *value.Record:
		// Grouping a record keyed by a shuffled "0".."n-1" could sort its
		// keys into list order and change how it normalizes.
		if n.IsIndexKeyed() {
			return r.reorderInPlace(n)
		}
		return r.group(n)
	}
	return v, nil
}

// reorderInPlace rebuilds an index-keyed record with its key order untouched.
func (r *reorderer) reorderInPlace(rec *value.Record) (value.Value, error) {
	fields := make([]value.Field, len(rec.Fields))
	for i, f := range rec.Fields {
		out, err := r.reorder(f.Value)
		if err != nil {
			return nil, err
		}
		fields[i] = value.Field{Key: f.Key, Value: out}
	}
	return value.NewRecord(fields...), nil
}

func (r *reorderer) group(rec *value.Record) (value.Value, error) {
	var grouped [numBuckets][]value.Field
	for _, f := range rec.Fields {
		b := bucketOf(f.Value)
		fv := f.Value
		if b == containers {
			out, err := r.reorder(fv)
			if err != nil {
				return nil, err
			}
			fv = out
		}
		grouped[b] = append(grouped[b], value.Field{Key: f.Key, Value: fv})
	}

	fields := make([]value.Field, 0, len(rec.Fields))
	for _, g := range grouped {
		fields = append(fields, g...)
	}
	return value.NewRecord(fields...), nil
}
