package spendings

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a display currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string          // ISO 4217 code
}

// M returns the amount as Money in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency's own grammar, like
// "1,234.56 ₽" for rubles.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Equal reports whether two money values have the same amount and currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }
