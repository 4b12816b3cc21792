package codec

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-json-experiment/json"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KimNorgaard/go-downsize/errors"
	"github.com/KimNorgaard/go-downsize/value"
)

// FromNative converts an in-memory Go value into a value.Value.
//
// The generic shapes produced by this package and by encoding/json are
// converted directly: nil, bool, string, integer and float types, []any,
// map[string]any (in sorted key order, since Go maps are unordered) and
// *orderedmap.OrderedMap[string, any] (in insertion order). A value.Value is
// returned as is. Anything else, such as a struct, is marshaled to JSON
// first and parsed back, so struct fields keep their declaration order.
func FromNative(in any, maxDepth int) (value.Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	c := &converter{limit: maxDepth}
	return c.convert(in)
}

type converter struct {
	limit int
	depth int
}

func (c *converter) enter() error {
	c.depth++
	if c.depth > c.limit {
		return &errors.DepthExceededError{Limit: c.limit}
	}
	return nil
}

func (c *converter) convert(in any) (value.Value, error) { //nolint:gocyclo
	switch x := in.(type) {
	case nil:
		return value.Null{}, nil
	case value.Value:
		return x, nil
	case bool:
		return value.Bool(x), nil
	case string:
		return value.String(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int8:
		return value.Int(int64(x)), nil
	case int16:
		return value.Int(int64(x)), nil
	case int32:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case uint:
		return value.Uint(uint64(x)), nil
	case uint8:
		return value.Uint(uint64(x)), nil
	case uint16:
		return value.Uint(uint64(x)), nil
	case uint32:
		return value.Uint(uint64(x)), nil
	case uint64:
		return value.Uint(x), nil
	case float32:
		if err := checkFloat(float64(x)); err != nil {
			return nil, err
		}
		return value.Float32(x), nil
	case float64:
		if err := checkFloat(x); err != nil {
			return nil, err
		}
		return value.Float(x), nil
	case []any:
		return c.convertSlice(x)
	case map[string]any:
		return c.convertMap(x)
	case *orderedmap.OrderedMap[string, any]:
		return c.convertOrderedMap(x)
	}
	return c.convertMarshaled(in)
}

func checkFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &errors.SerializeError{Err: fmt.Errorf("unsupported float value %v", f)}
	}
	return nil
}

func (c *converter) convertSlice(in []any) (value.Value, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer func() { c.depth-- }()

	elems := make([]value.Value, len(in))
	for i, el := range in {
		v, err := c.convert(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewList(elems...), nil
}

func (c *converter) convertMap(in map[string]any) (value.Value, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer func() { c.depth-- }()

	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]value.Field, 0, len(in))
	for _, k := range keys {
		v, err := c.convert(in[k])
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Key: k, Value: v})
	}
	return value.NewRecord(fields...), nil
}

func (c *converter) convertOrderedMap(in *orderedmap.OrderedMap[string, any]) (value.Value, error) {
	if in == nil {
		return value.Null{}, nil
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer func() { c.depth-- }()

	fields := make([]value.Field, 0, in.Len())
	for pair := in.Oldest(); pair != nil; pair = pair.Next() {
		v, err := c.convert(pair.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Key: pair.Key, Value: v})
	}
	return value.NewRecord(fields...), nil
}

func (c *converter) convertMarshaled(in any) (value.Value, error) {
	data, err := json.Marshal(in, json.Deterministic(true))
	if err != nil {
		return nil, &errors.SerializeError{Err: err}
	}
	return Parse(data, c.limit-c.depth)
}
