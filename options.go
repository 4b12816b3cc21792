package downsize

import (
	"fmt"

	"github.com/KimNorgaard/go-downsize/internal/normalize"
)

const defaultMaxDepth = 1000

// Option configures an operation.
type Option func(*options) error

type options struct {
	maxDepth  int
	indent    int
	useNumber bool
	pins      map[normalize.Pin]Shape
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) policy(shape Shape) normalize.Policy {
	return normalize.Policy{
		Shape:     shape,
		Pins:      o.pins,
		UseNumber: o.useNumber,
		MaxDepth:  o.maxDepth,
	}
}

// MaxDepth returns an Option that sets the maximum container nesting depth.
// Deeper input fails with a *DepthExceededError instead of exhausting the
// stack.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("downsize: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that makes serialized output multi-line, with
// each nesting level indented by n spaces. Zero gives compact output.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("downsize: indent must be a non-negative integer")
		}
		o.indent = n
		return nil
	}
}

// UseNumber returns an Option that makes normalized output keep every
// number as a value.Number instead of an int64 or float64.
func UseNumber() Option {
	return func(o *options) error {
		o.useNumber = true
		return nil
	}
}

// PinShape returns an Option that fixes the shape of the field child of any
// record found under the field parent, regardless of the shape requested
// for the rest of the document. The pinned shape applies to the whole
// subtree below the field. An empty parent addresses the root record; it
// equally matches records held under a field whose key is the empty string,
// since both are reached through the key "".
//
// PinShape may be given several times; a later pin for the same pair wins.
func PinShape(parent, child string, s Shape) Option {
	return func(o *options) error {
		if s != MapShape && s != RecordShape {
			return fmt.Errorf("downsize: unknown shape %v", s)
		}
		if o.pins == nil {
			o.pins = make(map[normalize.Pin]Shape)
		}
		o.pins[normalize.Pin{Parent: parent, Child: child}] = s
		return nil
	}
}
