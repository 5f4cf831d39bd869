package balance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact base-10 monetary value.
//
// All arithmetic is exact; rounding to the two-decimal canonical form only
// happens where an operation explicitly calls Round, so repeated additions
// never drift by a cent.
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses a decimal literal like "10", "-3.5" or "5000.00".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{value: v}, nil
}

// MustAmount is like ParseAmount but panics on invalid input.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// Round rounds to two decimal places, ties away from zero (half-up).
func (a Amount) Round() Amount { return Amount{value: a.value.Round(2)} }

// Decimal returns the underlying exact decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// String renders the canonical two-decimal form, matching -?\d+\.\d{2}.
func (a Amount) String() string { return a.value.StringFixed(2) }
