// Package pricing derives proposal totals from priced lines and a discount.
//
// All arithmetic runs on decimals and money results are rounded to cents,
// so the same lines and discount always produce the same totals.
package pricing

import (
	"errors"
	"math"

	"propostas_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount is not a finite number")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrPercentOutOfRange = errors.New("discount percentage must be between 0 and 100")
)

// Line is anything with a monthly and a one-off setup fee.
type Line struct {
	MonthlyFee float64
	SetupFee   float64
}

func LinesFromItems(items []entities.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{MonthlyFee: it.MonthlyFee, SetupFee: it.SetupFee})
	}
	return lines
}

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountAbsolute   DiscountKind = "absolute"
)

// Discount is either a percentage of the subtotal or an absolute amount.
// The zero value is an absolute discount of zero.
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

func Percent(p float64) Discount {
	return Discount{Kind: DiscountPercentage, Value: p}
}

func Amount(v float64) Discount {
	return Discount{Kind: DiscountAbsolute, Value: v}
}

// Validate rejects values that cannot be persisted. Compute itself accepts
// anything finite.
func (d Discount) Validate() error {
	if !finite(d.Value) {
		return ErrInvalidAmount
	}
	if d.Value < 0 {
		return ErrNegativeAmount
	}
	if d.Kind == DiscountPercentage && d.Value > 100 {
		return ErrPercentOutOfRange
	}
	return nil
}

func (d Discount) amount(subtotal decimal.Decimal) decimal.Decimal {
	v := dec(d.Value)
	if d.Kind == DiscountPercentage {
		return subtotal.Mul(v).Div(decimal.NewFromInt(100)).Round(2)
	}
	return v.Round(2)
}

// Absolute converts the discount into the currency amount it represents for
// the given subtotal. This is the value stored as discount_value.
func (d Discount) Absolute(subtotal float64) float64 {
	return d.amount(dec(subtotal)).InexactFloat64()
}

// Totals is the derived money summary of a set of lines.
type Totals struct {
	Monthly        float64 `json:"monthly"`
	Setup          float64 `json:"setup"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Final          float64 `json:"final"`
}

// Negative reports a discount larger than the subtotal. Compute does not clamp.
func (t Totals) Negative() bool {
	return t.Final < 0
}

// Compute sums the fees and applies the discount:
//
//	final = monthly + setup - discountAmount
func Compute(lines []Line, d Discount) Totals {
	monthly := decimal.Zero
	setup := decimal.Zero
	for _, l := range lines {
		monthly = monthly.Add(dec(l.MonthlyFee))
		setup = setup.Add(dec(l.SetupFee))
	}
	monthly = monthly.Round(2)
	setup = setup.Round(2)
	subtotal := monthly.Add(setup)
	discount := d.amount(subtotal)

	return Totals{
		Monthly:        monthly.InexactFloat64(),
		Setup:          setup.InexactFloat64(),
		Subtotal:       subtotal.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		Final:          subtotal.Sub(discount).InexactFloat64(),
	}
}

// CheckLines returns ErrInvalidAmount when any fee is NaN or infinite and
// ErrNegativeAmount when any fee is below zero.
func CheckLines(lines []Line) error {
	for _, l := range lines {
		if !finite(l.MonthlyFee) || !finite(l.SetupFee) {
			return ErrInvalidAmount
		}
		if l.MonthlyFee < 0 || l.SetupFee < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// dec treats non-finite input as zero; callers validate with CheckLines or
// Discount.Validate first.
func dec(v float64) decimal.Decimal {
	if !finite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
