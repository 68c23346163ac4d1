// Package money holds currency amounts as integer cents so totals and
// thresholds compare exactly.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// Amount is a currency value in cents. Valid amounts lie within
// ±math.MaxInt64 cents.
type Amount int64

const Zero Amount = 0

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(-math.MaxInt64)
)

// FromDecimal rounds d to the nearest cent, half away from zero.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	cents := d.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}
	return Amount(cents.IntPart()), nil
}

// FromFloat converts a literal price such as 99.99. It panics when v is
// not a finite amount in range.
func FromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("money: invalid amount %v", v))
	}
	a, err := FromDecimal(decimal.NewFromFloat(v))
	if err != nil {
		panic(err)
	}
	return a
}

// Parse reads a decimal string such as "5.99", "50" or "1.5e2".
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// Decimal returns the amount in currency units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) Float64() float64 {
	return a.Decimal().InexactFloat64()
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a decimal number, e.g. 99.99.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*a = 0
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
