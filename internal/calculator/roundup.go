// Package calculator holds the pure money arithmetic used by the allocation
// engine. Nothing here touches storage.
package calculator

import "github.com/shopspring/decimal"

var DefaultIncrement = decimal.NewFromInt(1)

// RoundUp returns the gap between purchase and the next multiple of
// increment, plus the increment itself, so a purchase that already sits on a
// boundary still yields one full increment:
//
//	RoundUp(4.30, 1.00) = 0.70 + 1.00 = 1.70
//	RoundUp(5.00, 1.00) = 0.00 + 1.00 = 1.00
//
// A non-positive increment is replaced by DefaultIncrement. Non-positive
// purchases (refunds, credits) yield zero; callers skip them before getting here.
func RoundUp(purchase, increment decimal.Decimal) decimal.Decimal {
	if !increment.IsPositive() {
		increment = DefaultIncrement
	}
	if !purchase.IsPositive() {
		return decimal.Zero
	}

	boundary := purchase.Div(increment).Ceil().Mul(increment)
	gap := boundary.Sub(purchase)

	result := gap.Add(increment)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}
