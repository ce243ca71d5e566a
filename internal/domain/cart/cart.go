// Package cart implements an ordered collection of priced items that
// computes a subtotal and renders a text listing.
package cart

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/pricecart/internal/domain/item"
)

var (
	maxSubtotal = decimal.NewFromInt(math.MaxInt64)
	minSubtotal = decimal.NewFromInt(math.MinInt64)
)

// Cart holds priced items in insertion order. The zero value is an empty
// cart without an ID. A Cart is not safe for concurrent use; see Locked.
type Cart struct {
	id    uuid.UUID
	items []item.Priced
}

// New creates an empty cart with a fresh random ID.
func New() *Cart {
	return &Cart{id: uuid.New()}
}

// ID returns the identifier assigned by New.
func (c *Cart) ID() uuid.UUID { return c.id }

// Add appends it to the end of the cart. Items should be passed by value so
// the cart is their only owner.
func (c *Cart) Add(it item.Priced) {
	c.items = append(c.items, it)
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// All iterates over the items in insertion order.
func (c *Cart) All() iter.Seq2[int, item.Priced] {
	return func(yield func(int, item.Priced) bool) {
		for i, it := range c.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Subtotal returns the sum of item prices in minor units, folded left to
// right from zero. The sum is computed exactly and clamped once: a total
// outside the int64 range saturates at math.MaxInt64 or math.MinInt64. Use
// ExactSubtotal when that matters.
func (c *Cart) Subtotal() item.Price {
	sum := c.minorSum()
	switch {
	case sum.GreaterThan(maxSubtotal):
		return math.MaxInt64
	case sum.LessThan(minSubtotal):
		return math.MinInt64
	}
	return item.Price(sum.IntPart())
}

// ExactSubtotal returns the sum of item prices in major units. It never
// overflows.
func (c *Cart) ExactSubtotal() decimal.Decimal {
	return c.minorSum().Shift(-2)
}

// minorSum returns the exact sum of item prices in minor units.
func (c *Cart) minorSum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(decimal.NewFromInt(int64(it.Price())))
	}
	return sum
}

// Render lists the items one per line in insertion order, formatted as
// "{description} ${price}". Every line, including the last, ends with "\n".
func (c *Cart) Render() string {
	var b strings.Builder
	for _, it := range c.items {
		fmt.Fprintf(&b, "%s $%d\n", it.Description(), int64(it.Price()))
	}
	return b.String()
}

// clone returns a copy that shares no storage with c.
func (c *Cart) clone() *Cart {
	items := make([]item.Priced, len(c.items))
	copy(items, c.items)
	return &Cart{id: c.id, items: items}
}
