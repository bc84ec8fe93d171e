// Package money converts between the rupee amounts clients send and the paise
// stored in the database. Client amounts never pass through float64.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const Symbol = "₹"

var paisePerRupee = decimal.NewFromInt(100)

var ErrNegativeAmount = errors.New("amount must be positive")

// ToPaise converts a major-unit amount to paise, rejecting negative and
// sub-paise amounts.
func ToPaise(amount decimal.Decimal) (int64, error) {
	if amount.Sign() <= 0 {
		return 0, ErrNegativeAmount
	}
	p := amount.Mul(paisePerRupee)
	if !p.IsInteger() {
		return 0, errors.New("amount has sub-paise precision")
	}
	return p.IntPart(), nil
}

// FromPaise returns the rupee value of a paise amount.
func FromPaise(paise int64) decimal.Decimal {
	return decimal.NewFromInt(paise).Div(paisePerRupee)
}

// Rupees renders paise as a plain rupee number for JSON responses.
func Rupees(paise int64) float64 {
	return FromPaise(paise).InexactFloat64()
}

// Format renders a paise amount as a currency-prefixed display string,
// e.g. 20000 -> "₹200", 3050 -> "₹30.5".
func Format(paise int64) string {
	return Symbol + FromPaise(paise).String()
}
