// Package normalize converts a value.Value into plain Go values in either
// map shape or record shape.
package normalize

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KimNorgaard/go-downsize/errors"
	"github.com/KimNorgaard/go-downsize/value"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1000

// Shape selects the Go representation of keyed containers.
type Shape int

const (
	// MapShape renders records as map[string]any.
	MapShape Shape = iota
	// RecordShape renders records as *orderedmap.OrderedMap[string, any],
	// keeping field order.
	RecordShape
)

func (s Shape) String() string {
	switch s {
	case MapShape:
		return "map"
	case RecordShape:
		return "record"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Pin addresses the field Child of a record that is itself the value of
// field Parent. An empty Parent addresses the fields of the root record, and
// also the fields of any record held under the key "". Elements of a list
// inherit the key of the field holding the list.
type Pin struct {
	Parent string
	Child  string
}

// Policy configures a conversion.
type Policy struct {
	// Shape is the representation used for records not covered by Pins.
	Shape Shape
	// Pins fixes the shape of whole subtrees regardless of Shape.
	Pins map[Pin]Shape
	// UseNumber keeps every number as a value.Number instead of converting
	// it to int64 or float64.
	UseNumber bool
	// MaxDepth bounds container nesting; zero means DefaultMaxDepth.
	MaxDepth int
}

// Normalize converts v according to p. Scalars become nil, bool, string or
// a number (see Policy.UseNumber); list-like containers, including records
// keyed "0".."n-1" and empty records, become []any.
func Normalize(v value.Value, p Policy) (any, error) {
	if p.MaxDepth <= 0 {
		p.MaxDepth = DefaultMaxDepth
	}
	n := &normalizer{policy: p}
	return n.normalize(v, p.Shape, "")
}

type normalizer struct {
	policy Policy
	depth  int
}

// normalize converts v. key is the field key under which v's enclosing
// container sits, used to resolve pins for v's own fields.
func (n *normalizer) normalize(v value.Value, shape Shape, key string) (any, error) {
	switch node := v.(type) {
	case nil, value.Null:
		return nil, nil
	case value.Bool:
		return bool(node), nil
	case value.String:
		return string(node), nil
	case value.Number:
		return n.number(node), nil
	}

	n.depth++
	if n.depth > n.policy.MaxDepth {
		return nil, &errors.DepthExceededError{Limit: n.policy.MaxDepth}
	}
	defer func() { n.depth-- }()

	if value.IsListLike(v) {
		return n.list(value.Elements(v), shape, key)
	}
	rec, ok := v.(*value.Record)
	if !ok {
		return nil, fmt.Errorf("downsize: cannot normalize value of type %T", v)
	}
	return n.record(rec, shape, key)
}

func (n *normalizer) list(elems []value.Value, shape Shape, key string) (any, error) {
	out := make([]any, len(elems))
	for i, el := range elems {
		nv, err := n.normalize(el, shape, key)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func (n *normalizer) record(rec *value.Record, shape Shape, key string) (any, error) {
	switch shape {
	case RecordShape:
		om := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](rec.Len()))
		for _, f := range rec.Fields {
			nv, err := n.normalize(f.Value, n.fieldShape(shape, key, f.Key), f.Key)
			if err != nil {
				return nil, err
			}
			om.Set(f.Key, nv)
		}
		return om, nil
	case MapShape:
		m := make(map[string]any, rec.Len())
		for _, f := range rec.Fields {
			nv, err := n.normalize(f.Value, n.fieldShape(shape, key, f.Key), f.Key)
			if err != nil {
				return nil, err
			}
			m[f.Key] = nv
		}
		return m, nil
	}
	return nil, fmt.Errorf("downsize: unknown shape %v", shape)
}

func (n *normalizer) fieldShape(shape Shape, parent, child string) Shape {
	if pinned, ok := n.policy.Pins[Pin{Parent: parent, Child: child}]; ok {
		return pinned
	}
	return shape
}

// number picks the narrowest Go type that holds num without loss.
func (n *normalizer) number(num value.Number) any {
	if n.policy.UseNumber {
		return num
	}
	if num.IsInteger() {
		// int64 has no negative zero.
		if i, err := num.Int64(); err == nil && (i != 0 || !strings.HasPrefix(string(num), "-")) {
			return i
		}
		return num
	}
	if f, exact := num.ExactFloat64(); exact {
		return f
	}
	return num
}
