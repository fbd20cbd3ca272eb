package dto

import (
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/shopspring/decimal"
)

// Amounts leave the service as fixed two-place strings.
func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MinorUnits)
}
