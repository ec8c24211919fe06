// Package xmlmap maps flat XML records to Go structs through explicit field tables.
//
// A Schema lists the child elements of one record in the order they are written.
// Reading looks every child up by name, so element order in incoming documents
// does not matter and missing elements go through the codec's absent branch.
package xmlmap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/malkit/malkit/malerr"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"gopkg.in/xmlpath.v2"
)

type Schema[T any] struct {
	Root   string
	fields []Field[T]
	paths  []*xmlpath.Path
}

// NewSchema panics if a field name is not a valid element name.
func NewSchema[T any](root string, fields ...Field[T]) *Schema[T] {
	return &Schema[T]{
		Root:   root,
		fields: fields,
		paths: lo.Map(fields, func(f Field[T], _ int) *xmlpath.Path {
			return xmlpath.MustCompile(f.Name)
		}),
	}
}

// Names returns the element names in declared order.
func (s *Schema[T]) Names() []string {
	return lo.Map(s.fields, func(f Field[T], _ int) string {
		return f.Name
	})
}

// Marshal renders the record as a standalone document. Fields whose codec
// yields no value are left out.
func (s *Schema[T]) Marshal(record *T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	if err := s.encode(xml.NewEncoder(&buf), record); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *Schema[T]) encode(enc *xml.Encoder, record *T) error {
	root := xml.StartElement{Name: xml.Name{Local: s.Root}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	for _, f := range s.fields {
		value, ok := f.encode(record).Get()
		if !ok {
			continue
		}

		el := xml.StartElement{Name: xml.Name{Local: f.Name}}
		if err := enc.EncodeElement(value, el); err != nil {
			return fmt.Errorf("encode %s: %w", f.Name, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}

	return enc.Flush()
}

// Decode reads one record from its element node.
func (s *Schema[T]) Decode(node *xmlpath.Node) (T, error) {
	var record T

	for i, f := range s.fields {
		wire := mo.None[string]()
		if text, ok := s.paths[i].String(node); ok {
			wire = mo.Some(text)
		}

		if err := f.decode(&record, wire); err != nil {
			return record, fieldError(f.Name, err)
		}
	}

	return record, nil
}

// DecodeAll reads every record matched by path, evaluated from node.
// The result is never nil.
func (s *Schema[T]) DecodeAll(node *xmlpath.Node, path *xmlpath.Path) ([]T, error) {
	records := make([]T, 0)

	iter := path.Iter(node)
	for iter.Next() {
		record, err := s.Decode(iter.Node())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Unmarshal parses a document whose root element is the schema's root.
func (s *Schema[T]) Unmarshal(data []byte) (T, error) {
	var record T

	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return record, err
	}

	iter := xmlpath.MustCompile("/" + s.Root).Iter(doc)
	if !iter.Next() {
		return record, fmt.Errorf("missing <%s> element", s.Root)
	}

	return s.Decode(iter.Node())
}

// Parse reads a whole document. HTML named entities, which the service leaves
// in free text, are accepted.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity

	node, err := xmlpath.ParseDecoder(decoder)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return node, nil
}

func fieldError(name string, err error) error {
	var enumErr *malerr.UnknownEnumValueError
	if errors.As(err, &enumErr) {
		return &malerr.UnknownEnumValueError{Field: name, Value: enumErr.Value}
	}

	return fmt.Errorf("field %s: %w", name, err)
}
