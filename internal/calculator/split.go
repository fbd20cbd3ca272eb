package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitEven divides total into n equal shares of `places` decimal places.
// The cents that do not divide evenly are handed out one each to the first
// shares, so the shares always sum to total rounded to places and differ by
// at most one minor unit. Order of the result follows the order of the
// recipients the caller passes in.
func SplitEven(total decimal.Decimal, n int, places int32) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("must have at least one recipient")
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("total cannot be negative")
	}

	unit := decimal.New(1, -places)
	total = total.Round(places)
	count := decimal.NewFromInt(int64(n))

	base := total.Div(count).Truncate(places)
	remainder := total.Sub(base.Mul(count))
	extra := remainder.Div(unit).IntPart()

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < extra {
			shares[i] = shares[i].Add(unit)
		}
	}
	return shares, nil
}
