// Package codec provides the pure, stateless converters between XML wire text and domain values.
//
// Wire values are modelled as mo.Option[string]: None means the element was absent from the
// document (or must be omitted from it), so every codec states its own null handling.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Decoder turns wire text into a domain value.
type Decoder[T any] interface {
	Decode(wire mo.Option[string]) (T, error)
}

// Encoder turns a domain value into wire text. None means "write no element".
type Encoder[T any] interface {
	Encode(value T) mo.Option[string]
}

// Codec converts in both directions.
type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

// present returns the trimmed wire text and whether it carries anything at all.
func present(wire mo.Option[string]) (string, bool) {
	s, ok := wire.Get()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

type text struct{}

// Text passes strings through untouched. Absent decodes to "".
var Text Codec[string] = text{}

func (text) Decode(wire mo.Option[string]) (string, error) {
	return wire.OrEmpty(), nil
}

func (text) Encode(value string) mo.Option[string] {
	return mo.Some(value)
}

type integer struct{}

// Int converts base-10 integers. Absent or blank decodes to 0.
var Int Codec[int] = integer{}

func (integer) Decode(wire mo.Option[string]) (int, error) {
	s, ok := present(wire)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	return n, nil
}

func (integer) Encode(value int) mo.Option[string] {
	return mo.Some(strconv.Itoa(value))
}

type float struct{}

// Float converts decimal numbers using the shortest exact representation on output.
var Float Codec[float64] = float{}

func (float) Decode(wire mo.Option[string]) (float64, error) {
	s, ok := present(wire)
	if !ok {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", s, err)
	}
	return f, nil
}

func (float) Encode(value float64) mo.Option[string] {
	return mo.Some(strconv.FormatFloat(value, 'f', -1, 64))
}

type optional[T any] struct {
	inner Codec[T]
}

// Optional lifts c so that an absent element maps to None and None writes no element.
// Blank wire text counts as absent.
func Optional[T any](c Codec[T]) Codec[mo.Option[T]] {
	return optional[T]{inner: c}
}

func (o optional[T]) Decode(wire mo.Option[string]) (mo.Option[T], error) {
	if _, ok := present(wire); !ok {
		return mo.None[T](), nil
	}
	v, err := o.inner.Decode(wire)
	if err != nil {
		return mo.None[T](), err
	}
	return mo.Some(v), nil
}

func (o optional[T]) Encode(value mo.Option[T]) mo.Option[string] {
	v, ok := value.Get()
	if !ok {
		return mo.None[string]()
	}
	return o.inner.Encode(v)
}
