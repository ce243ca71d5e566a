package cart

import (
	"github.com/go-faster/jx"

	"github.com/xenking/pricecart/internal/domain/item"
)

// EncodeJSON writes the cart summary to e. Items that implement item.Kinded
// carry a "kind" field.
func (c *Cart) EncodeJSON(e *jx.Encoder) {
	subtotal := c.Subtotal()

	e.ObjStart()
	e.FieldStart("id")
	e.Str(c.id.String())

	e.FieldStart("items")
	e.ArrStart()
	for _, it := range c.items {
		encodeItem(e, it)
	}
	e.ArrEnd()

	e.FieldStart("subtotal")
	e.Int64(int64(subtotal))
	e.FieldStart("subtotal_major")
	e.Str(subtotal.Major())
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (c *Cart) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	c.EncodeJSON(&e)
	return e.Bytes(), nil
}

func encodeItem(e *jx.Encoder, it item.Priced) {
	e.ObjStart()
	if k, ok := it.(item.Kinded); ok {
		e.FieldStart("kind")
		e.Str(k.Kind())
	}
	e.FieldStart("description")
	e.Str(it.Description())
	e.FieldStart("price")
	e.Int64(int64(it.Price()))
	e.ObjEnd()
}
