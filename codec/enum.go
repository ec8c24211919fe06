package codec

import (
	"github.com/malkit/malkit/malerr"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// EnumCodec maps the members of a closed enum to their fixed wire values.
type EnumCodec[E comparable] struct {
	toWire   map[E]string
	fromWire map[string]E
}

// Enum builds a codec from the member -> wire value table. The table must be one-to-one.
func Enum[E comparable](table map[E]string) *EnumCodec[E] {
	return &EnumCodec[E]{
		toWire:   table,
		fromWire: lo.Invert(table),
	}
}

// Decode matches the wire text exactly. Absent or blank text decodes to the zero member;
// anything else that is not in the table fails with *malerr.UnknownEnumValueError.
func (c *EnumCodec[E]) Decode(wire mo.Option[string]) (E, error) {
	var zero E
	s, ok := present(wire)
	if !ok {
		return zero, nil
	}
	if v, ok := c.fromWire[s]; ok {
		return v, nil
	}
	return zero, &malerr.UnknownEnumValueError{Value: s}
}

// Encode writes the member's wire value, or no element for the zero member.
func (c *EnumCodec[E]) Encode(value E) mo.Option[string] {
	if s, ok := c.toWire[value]; ok {
		return mo.Some(s)
	}
	return mo.None[string]()
}

// Parse looks a member up by its wire value.
func (c *EnumCodec[E]) Parse(wire string) (E, bool) {
	v, ok := c.fromWire[wire]
	return v, ok
}

// Members lists every member of the enum.
func (c *EnumCodec[E]) Members() []E {
	return lo.Keys(c.toWire)
}
