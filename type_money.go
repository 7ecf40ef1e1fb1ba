package stocks

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single currency this ledger accounts in. Multi-currency
// instruments are out of scope, but display formatting still goes through the
// currency definition so fraction digits and symbol placement stay correct.
const currencyCode = "USD"

// Money represents a monetary value with exact decimal arithmetic.
// Rounding to the currency's fraction happens only at presentation and
// persistence boundaries, never mid-calculation.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, currencyCode).Currency()
}

// String returns the money value formatted in its currency (e.g. "$110.00").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Round returns the value rounded to the currency's fraction digits.
// It is the reporting form of a monetary amount.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction))}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value)} }

// MarshalJSON persists the value rounded to the currency fraction, unquoted.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Round().value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	return m.value.UnmarshalJSON(bytes)
}
