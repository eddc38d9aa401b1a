package dashboard

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value: a price, a cost, or a profit.
//
// The zero value is zero with no currency; a currency-less Money adopts the
// currency of whatever it is added to.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.Round(int32(m.currency().Fraction)).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) AsFloat() float64                { return m.value.InexactFloat64() }
func (m Money) In(currency string) Money        { return Money{value: m.value, cur: currency} }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n as a percentage, and false when n is zero.
func (m Money) Ratio(n Money) (Percent, bool) {
	if n.value.IsZero() {
		return 0, false
	}
	return Percent(m.value.Div(n.value).Shift(2).InexactFloat64()), true
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the amount as a bare number, the currency is a property of the file.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON reads a bare number (or a quoted one). The currency is left empty.
func (m *Money) UnmarshalJSON(b []byte) error {
	m.cur = ""
	return m.value.UnmarshalJSON(b)
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}
