package xmlmap

import (
	"github.com/malkit/malkit/codec"
	"github.com/samber/mo"
)

// Field binds one child element of a record to a struct member.
type Field[T any] struct {
	Name   string
	decode func(record *T, wire mo.Option[string]) error
	encode func(record *T) mo.Option[string]
}

// Bind maps the element name to the member returned by get in both directions.
func Bind[T, V any](name string, c codec.Codec[V], get func(*T) *V) Field[T] {
	return Field[T]{
		Name:   name,
		decode: decodeInto(c, get),
		encode: func(record *T) mo.Option[string] {
			return c.Encode(*get(record))
		},
	}
}

// Read maps the element on the way in only. Marshal never writes it.
func Read[T, V any](name string, d codec.Decoder[V], get func(*T) *V) Field[T] {
	return Field[T]{
		Name:   name,
		decode: decodeInto(d, get),
		encode: func(*T) mo.Option[string] {
			return mo.None[string]()
		},
	}
}

// Write maps the element on the way out only. Decode leaves the member untouched.
func Write[T, V any](name string, e codec.Encoder[V], get func(*T) *V) Field[T] {
	return Field[T]{
		Name: name,
		decode: func(*T, mo.Option[string]) error {
			return nil
		},
		encode: func(record *T) mo.Option[string] {
			return e.Encode(*get(record))
		},
	}
}

func decodeInto[T, V any](d codec.Decoder[V], get func(*T) *V) func(*T, mo.Option[string]) error {
	return func(record *T, wire mo.Option[string]) error {
		v, err := d.Decode(wire)
		if err != nil {
			return err
		}
		*get(record) = v
		return nil
	}
}
