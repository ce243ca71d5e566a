// Package item defines the priced item capability and its variants.
package item

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// MinorUnits is the number of minor units in one major currency unit.
const MinorUnits = 100

// minorExp is the decimal exponent of one minor unit.
const minorExp = -2

// Price is a monetary amount in minor currency units (cents).
type Price int64

// Decimal returns the exact amount in major units.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), minorExp)
}

// Major formats the amount in major units: p / 100.0 in the shortest float
// representation, without an exponent ("21.75", "20", "0.75").
func (p Price) Major() string {
	return strconv.FormatFloat(float64(p)/MinorUnits, 'f', -1, 64)
}
