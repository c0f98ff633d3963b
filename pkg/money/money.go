// Package money provides currency-safe amounts for statement extraction using
// integer cents and the Fowler Money pattern. Statement amounts are USD; the
// parser accepts the punctuation found in US credit-card statements.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates a string that could not be parsed as a currency amount.
var ErrInvalidAmount = errors.New("invalid currency amount")

// Amount represents a monetary value in USD minor units.
// It wraps go-money for safe arithmetic and shopspring/decimal for precision.
type Amount struct {
	m *money.Money
}

// FromCents creates an Amount from minor units.
func FromCents(cents int64) Amount {
	return Amount{m: money.New(cents, money.USD)}
}

// FromDecimal creates an Amount from a decimal value, rounding to cents.
func FromDecimal(d decimal.Decimal) Amount {
	cents := d.Mul(decimal.New(1, 2)).Round(0).IntPart()
	return FromCents(cents)
}

// Parse reads an amount string as it appears in statement text.
// Accepts "1234.56", "$1,234.56", "-45.67" and "(45.67)" (negative).
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.Trim(s, "()")
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if negative {
		d = d.Neg()
	}
	return FromDecimal(d), nil
}

// Cents returns the amount in minor units.
func (a Amount) Cents() int64 {
	if a.m == nil {
		return 0
	}
	return a.m.Amount()
}

// Decimal converts to decimal.Decimal for precise calculations.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromInt(a.Cents()).Div(decimal.New(1, 2))
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.m == nil || a.m.IsZero()
}

// IsNegative returns true if the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.m != nil && a.m.IsNegative()
}

// Abs returns the absolute value.
func (a Amount) Abs() Amount {
	if a.m == nil {
		return FromCents(0)
	}
	return Amount{m: a.m.Absolute()}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	sum, err := a.normalized().m.Add(b.normalized().m)
	if err != nil {
		// Both sides are USD; go-money only errors on currency mismatch.
		return a
	}
	return Amount{m: sum}
}

// Display returns a formatted string such as "$1,234.56".
func (a Amount) Display() string {
	return a.normalized().m.Display()
}

// String returns the amount as a plain decimal string with two fraction digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// MarshalJSON serializes the amount as a JSON number with two fraction digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON reads a JSON number (or quoted decimal string) into an Amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	*a = FromDecimal(d)
	return nil
}

func (a Amount) normalized() Amount {
	if a.m == nil {
		return FromCents(0)
	}
	return a
}
