// Package value defines the closed set of JSON values that downsize operates on.
//
// A Value is one of Null, Bool, Number, String, *List or *Record. The set is
// sealed: code outside this package can switch over the concrete types
// exhaustively without needing a default case for foreign implementations.
package value

import (
	"bytes"
	"strconv"
	"strings"
)

// Kind identifies the concrete type of a Value.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ListKind
	RecordKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	case RecordKind:
		return "record"
	}
	return "<unknown kind>"
}

// Value is the base interface for all JSON values.
type Value interface {
	// Kind returns the concrete kind of the value.
	Kind() Kind
	// String returns a compact JSON-like representation of the value,
	// intended for debugging and test output.
	String() string
	value()
}

// Null is the JSON null literal.
type Null struct{}

func (Null) value()         {}
func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "null" }

// Bool is a JSON boolean.
type Bool bool

func (Bool) value()           {}
func (Bool) Kind() Kind       { return BoolKind }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String is a JSON string.
type String string

func (String) value()           {}
func (String) Kind() Kind       { return StringKind }
func (s String) String() string { return strconv.Quote(string(s)) }

// List is an ordered sequence of values. Element order is significant.
type List struct {
	Elements []Value
}

// NewList returns a list holding elems.
func NewList(elems ...Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elements: elems}
}

func (*List) value()     {}
func (*List) Kind() Kind { return ListKind }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elements) }

func (l *List) String() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(l.Elements))
	for _, el := range l.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ","))
	out.WriteString("]")
	return out.String()
}

// Field is a single key/value member of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered mapping from string keys to values.
type Record struct {
	Fields []Field
}

// NewRecord returns a record holding fields in the given order.
func NewRecord(fields ...Field) *Record {
	if fields == nil {
		fields = []Field{}
	}
	return &Record{Fields: fields}
}

func (*Record) value()     {}
func (*Record) Kind() Kind { return RecordKind }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.Fields) }

// Keys returns the field keys in order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set stores v under key. An existing key keeps its position and has its
// value replaced; a new key is appended. Set scans the fields, so building
// a wide record should append to Fields directly.
func (r *Record) Set(key string, v Value) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = v
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: v})
}

// IsListLike reports whether the record's keys are the dense sequence
// "0", "1", ..., "n-1" in that order. An empty record is list-like.
func (r *Record) IsListLike() bool {
	for i, f := range r.Fields {
		if f.Key != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// IsIndexKeyed reports whether the record's keys are exactly "0", "1", ...,
// "n-1" in any order. List-like records are index-keyed.
func (r *Record) IsIndexKeyed() bool {
	seen := make([]bool, len(r.Fields))
	for _, f := range r.Fields {
		i, err := strconv.Atoi(f.Key)
		if err != nil || i < 0 || i >= len(seen) || seen[i] || strconv.Itoa(i) != f.Key {
			return false
		}
		seen[i] = true
	}
	return true
}

func (r *Record) String() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		pairs = append(pairs, strconv.Quote(f.Key)+":"+f.Value.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ","))
	out.WriteString("}")
	return out.String()
}

// IsContainer reports whether v is a *List or a *Record.
func IsContainer(v Value) bool {
	switch v.(type) {
	case *List, *Record:
		return true
	}
	return false
}

// IsListLike reports whether v must be treated as a list: a *List, or a
// *Record whose keys form the dense zero-based index sequence.
func IsListLike(v Value) bool {
	switch n := v.(type) {
	case *List:
		return true
	case *Record:
		return n.IsListLike()
	}
	return false
}

// Elements returns the elements of a list-like value in order. It returns
// nil for any other value.
func Elements(v Value) []Value {
	switch n := v.(type) {
	case *List:
		return n.Elements
	case *Record:
		if !n.IsListLike() {
			return nil
		}
		elems := make([]Value, len(n.Fields))
		for i, f := range n.Fields {
			elems[i] = f.Value
		}
		return elems
	}
	return nil
}
