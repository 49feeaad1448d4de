package engine

import (
	"github.com/shopspring/decimal"

	"estatecrm/internal/models"
)

// Rates is the configured split: Company of the subtotal goes to the
// company, DevShare of the remainder to the development pool. Both are
// fractions in [0,1].
type Rates struct {
	Company  decimal.Decimal `json:"company"`
	DevShare decimal.Decimal `json:"dev_share"`
}

// NewRates builds a rate table from fractional float configuration values.
func NewRates(company, devShare float64) Rates {
	return Rates{
		Company:  decimal.NewFromFloat(company),
		DevShare: decimal.NewFromFloat(devShare),
	}
}

// Waterfall is the three-way split of a deal's fee subtotal.
type Waterfall struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Company   decimal.Decimal `json:"company"`
	DevPool   decimal.Decimal `json:"dev_pool"`
	SalesPool decimal.Decimal `json:"sales_pool"`
}

// SplitFees runs the waterfall: subtotal = round(Σ fees − deduction),
// company = round(subtotal × company rate), dev pool = round(remainder ×
// dev share). The sales pool is the remainder minus the dev pool, computed
// by subtraction rather than its own percentage, so company + dev + sales
// equals the subtotal exactly regardless of rounding. A negative subtotal
// is passed through untouched; it flags a data-entry problem upstream and
// clamping it here would hide that.
func SplitFees(fees []string, deduction string, r Rates) Waterfall {
	sum := decimal.Zero
	for _, fee := range fees {
		sum = sum.Add(ParseAmount(fee))
	}
	subtotal := round(sum.Sub(ParseAmount(deduction)))

	company := round(subtotal.Mul(r.Company))
	remainder := subtotal.Sub(company)
	devPool := round(remainder.Mul(r.DevShare))
	salesPool := remainder.Sub(devPool)

	return Waterfall{
		Subtotal:  subtotal,
		Company:   company,
		DevPool:   devPool,
		SalesPool: salesPool,
	}
}

// Subtotal is the fee total of a deal without the waterfall split.
func Subtotal(deal models.Deal) decimal.Decimal {
	sum := decimal.Zero
	for _, fee := range deal.FeeFields() {
		sum = sum.Add(ParseAmount(fee))
	}
	return round(sum.Sub(ParseAmount(deal.Deduction)))
}
