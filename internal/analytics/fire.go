package analytics

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidWithdrawalRate means the safe withdrawal rate was zero or
// negative.
var ErrInvalidWithdrawalRate = errors.New("withdrawal rate must be greater than zero")

// DefaultWithdrawalRate is the conventional 4% safe withdrawal rate.
var DefaultWithdrawalRate = decimal.NewFromFloat(0.04)

// EstimateFireNumber returns the portfolio size needed to sustain the
// given annual expense at a safe withdrawal rate, rounded to two places.
func EstimateFireNumber(annualExpense, withdrawalRate decimal.Decimal) (decimal.Decimal, error) {
	if withdrawalRate.Sign() <= 0 {
		return decimal.Decimal{}, ErrInvalidWithdrawalRate
	}
	return annualExpense.Div(withdrawalRate).Round(2), nil
}
