package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/KimNorgaard/go-downsize/errors"
	"github.com/KimNorgaard/go-downsize/value"
)

// Serialize writes v as JSON text. Record fields are written in their
// stored order and numbers as their stored literal. An indent greater than
// zero produces multi-line output indented by that many spaces per level.
func Serialize(v value.Value, indent, maxDepth int) ([]byte, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	var opts []jsontext.Options
	if indent > 0 {
		opts = append(opts, jsontext.WithIndent(strings.Repeat(" ", indent)))
	}

	var buf bytes.Buffer
	s := &serializer{enc: jsontext.NewEncoder(&buf, opts...), limit: maxDepth}
	if err := s.writeValue(v); err != nil {
		if _, ok := err.(*errors.DepthExceededError); ok {
			return nil, err
		}
		return nil, &errors.SerializeError{Err: err}
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

type serializer struct {
	enc   *jsontext.Encoder
	limit int
	depth int
}

func (s *serializer) writeValue(v value.Value) error {
	switch node := v.(type) {
	case nil, value.Null:
		return s.enc.WriteToken(jsontext.Null)
	case value.Bool:
		return s.enc.WriteToken(jsontext.Bool(bool(node)))
	case value.String:
		return s.enc.WriteToken(jsontext.String(string(node)))
	case value.Number:
		if err := s.enc.WriteValue(jsontext.Value(node)); err != nil {
			return fmt.Errorf("invalid number %q: %w", string(node), err)
		}
		return nil
	case *value.List:
		return s.writeList(node)
	case *value.Record:
		return s.writeRecord(node)
	}
	return fmt.Errorf("cannot serialize value of type %T", v)
}

func (s *serializer) enter() error {
	s.depth++
	if s.depth > s.limit {
		return &errors.DepthExceededError{Limit: s.limit}
	}
	return nil
}

func (s *serializer) writeList(l *value.List) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer func() { s.depth-- }()

	if err := s.enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for _, el := range l.Elements {
		if err := s.writeValue(el); err != nil {
			return err
		}
	}
	return s.enc.WriteToken(jsontext.ArrayEnd)
}

func (s *serializer) writeRecord(r *value.Record) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer func() { s.depth-- }()

	if err := s.enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	for _, f := range r.Fields {
		if err := s.enc.WriteToken(jsontext.String(f.Key)); err != nil {
			return err
		}
		if err := s.writeValue(f.Value); err != nil {
			return err
		}
	}
	return s.enc.WriteToken(jsontext.ObjectEnd)
}
