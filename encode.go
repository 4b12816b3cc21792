package downsize

import (
	"io"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KimNorgaard/go-downsize/internal/codec"
	"github.com/KimNorgaard/go-downsize/internal/reorder"
	"github.com/KimNorgaard/go-downsize/value"
)

// origin records what kind of input Optimize was given so the result can be
// handed back in the same form.
type origin int

const (
	originScalar origin = iota
	originValue
	originText
	originMap
	originRecord
)

// Optimize reorders the fields of in and returns the result in the form in
// was given:
//
//   - a value.Value yields a value.Value;
//   - JSON text, as []byte or as a string that starts with '{' or '[' after
//     trimming white space, yields record-shaped Go values;
//   - map[string]any, []any and other Go maps yield map-shaped Go values;
//   - ordered maps, structs and other Go values yield record-shaped Go values;
//   - any other scalar is returned unchanged.
//
// Go maps have no field order, so callers that need to observe the new
// order should ask for a value.Value, an ordered map, or use OptimizeJSON.
func Optimize(in any, opts ...Option) (any, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	v, from, err := ingest(in, o)
	if err != nil {
		return nil, err
	}
	if from == originScalar {
		return in, nil
	}
	out, err := reorder.Reorder(v, o.maxDepth)
	if err != nil {
		return nil, err
	}

	switch from {
	case originValue:
		return out, nil
	case originMap:
		return Normalize(out, MapShape, opts...)
	default:
		return Normalize(out, RecordShape, opts...)
	}
}

// OptimizeJSON reorders the fields of in and returns the JSON text of the
// result. in is accepted in any form Optimize accepts; a string that does
// not look like JSON text is encoded as a JSON string.
func OptimizeJSON(in any, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	v, _, err := ingest(in, o)
	if err != nil {
		return nil, err
	}
	out, err := reorder.Reorder(v, o.maxDepth)
	if err != nil {
		return nil, err
	}
	return codec.Serialize(out, o.indent, o.maxDepth)
}

// looksLikeJSON reports whether s should be treated as JSON text rather
// than as a plain string.
func looksLikeJSON(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}

func ingest(in any, o *options) (value.Value, origin, error) {
	var from origin
	switch x := in.(type) {
	case value.Value:
		return x, originValue, nil
	case []byte:
		v, err := codec.Parse(x, o.maxDepth)
		return v, originText, err
	case string:
		if !looksLikeJSON(x) {
			return value.String(x), originScalar, nil
		}
		v, err := codec.Parse([]byte(x), o.maxDepth)
		return v, originText, err
	case map[string]any, []any:
		from = originMap
	case *orderedmap.OrderedMap[string, any]:
		from = originRecord
	default:
		if in != nil && reflect.TypeOf(in).Kind() == reflect.Map {
			from = originMap
		} else {
			from = originRecord
		}
	}

	v, err := codec.FromNative(in, o.maxDepth)
	if err != nil {
		return nil, 0, err
	}
	if !value.IsContainer(v) {
		return v, originScalar, nil
	}
	return v, from, nil
}

// Encoder writes optimized JSON text to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the optimized JSON encoding of v to the stream, followed by
// a newline.
func (e *Encoder) Encode(v any) error {
	data, err := OptimizeJSON(v, e.opts...)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}
