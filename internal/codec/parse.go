// Package codec converts between JSON text, Go values and value.Value.
//
// Parsing keeps object member order and the exact text of every number;
// serializing writes both back unchanged.
package codec

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/KimNorgaard/go-downsize/errors"
	"github.com/KimNorgaard/go-downsize/value"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1000

// Parse decodes a single JSON value from data. Trailing non-whitespace
// input is an error. When an object repeats a name, the last value wins
// and keeps the position of the first occurrence.
func Parse(data []byte, maxDepth int) (value.Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{
		dec:   jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true)),
		limit: maxDepth,
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, p.wrap(err)
	}
	if _, err := p.dec.ReadToken(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, p.wrap(err)
	}
	return v, nil
}

type parser struct {
	dec   *jsontext.Decoder
	limit int
	depth int
}

func (p *parser) wrap(err error) error {
	var de *errors.DepthExceededError
	if stderrors.As(err, &de) {
		return err
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &errors.ParseError{Offset: p.dec.InputOffset(), Err: err}
}

func (p *parser) parseValue() (value.Value, error) {
	switch p.dec.PeekKind() {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '0':
		raw, err := p.dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return value.Number(string(raw)), nil
	}

	tok, err := p.dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return value.Null{}, nil
	case 't', 'f':
		return value.Bool(tok.Bool()), nil
	case '"':
		return value.String(tok.String()), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok.Kind())
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.limit {
		return &errors.DepthExceededError{Limit: p.limit}
	}
	return nil
}

func (p *parser) parseObject() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if _, err := p.dec.ReadToken(); err != nil {
		return nil, err
	}
	rec := value.NewRecord()
	// A repeated name keeps its first position and takes the last value.
	var index map[string]int
	for p.dec.PeekKind() != '}' {
		name, err := p.dec.ReadToken()
		if err != nil {
			return nil, err
		}
		// The token is only valid until the next decoder call.
		key := name.String()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if index == nil {
			index = make(map[string]int)
		}
		if i, ok := index[key]; ok {
			rec.Fields[i].Value = v
			continue
		}
		index[key] = len(rec.Fields)
		rec.Fields = append(rec.Fields, value.Field{Key: key, Value: v})
	}
	if _, err := p.dec.ReadToken(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (p *parser) parseArray() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if _, err := p.dec.ReadToken(); err != nil {
		return nil, err
	}
	list := value.NewList()
	for p.dec.PeekKind() != ']' {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, v)
	}
	if _, err := p.dec.ReadToken(); err != nil {
		return nil, err
	}
	return list, nil
}
