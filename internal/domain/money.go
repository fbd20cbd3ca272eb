package domain

import "github.com/shopspring/decimal"

// MinorUnits is the number of decimal places stored for every amount.
const MinorUnits = 2

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MinorUnits)
}
