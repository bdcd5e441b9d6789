package simulador

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a single currency.
//
// Every cash amount in a simulation (prices, contributions, payouts,
// valuations) is a Money so that the walk over the series never accumulates
// float rounding. Statistics are derived from it as float64 at the very end.
type Money struct {
	value decimal.Decimal // major units
	cur   string          // ISO 4217 code, "" is the weak "any" currency
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency resolves the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency symbol and grouping,
// e.g. "R$10,000.00" for M(10000, "BRL").
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Amount returns the raw decimal value in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Currency() string         { return m.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// Mul scales the amount by a quantity of shares.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// DivPrice returns how many shares this amount buys at the given unit price.
func (m Money) DivPrice(price Money) Quantity {
	return Quantity{value: m.value.Div(price.value)}
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur merges two currencies, treating "" as compatible with anything.
// Mixing two distinct real currencies is a programming error.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// AsFloat converts to float64 for statistical use. Lossy, keep it out of the
// accounting path.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON encodes just the decimal amount. Currency is carried once at
// the document level by the encoders, not on every figure.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }
