package downsize

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-downsize/internal/codec"
)

// Rebuild parses JSON text produced by OptimizeJSON and converts it into
// Go values of the requested shape. See Normalize for the conversion rules
// and PinShape for overriding the shape of individual fields.
func Rebuild(data []byte, shape Shape, opts ...Option) (any, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	v, err := codec.Parse(data, o.maxDepth)
	if err != nil {
		return nil, err
	}
	return Normalize(v, shape, opts...)
}

// Decoder reads optimized JSON text from an input stream and rebuilds it.
type Decoder struct {
	r     io.Reader
	shape Shape
	opts  []Option
}

// NewDecoder returns a new decoder that reads from r and rebuilds records
// in the given shape.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func NewDecoder(r io.Reader, shape Shape, opts ...Option) *Decoder {
	return &Decoder{r: r, shape: shape, opts: opts}
}

// Decode reads the whole input and returns the rebuilt value.
func (d *Decoder) Decode() (any, error) {
	if d.r == nil {
		return nil, fmt.Errorf("downsize: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Rebuild(data, d.shape, d.opts...)
}
