// Package audit flags commission distributions that need a human look.
// Warnings never block a payout; they ride along with the report.
package audit

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"estatecrm/internal/engine"
)

// Warning codes.
const (
	WarnPoolOverAllocated  = "pool_over_allocated"
	WarnPoolUnderAllocated = "pool_under_allocated"
	WarnNegativeSubtotal   = "negative_subtotal"
	WarnNoParticipants     = "no_participants"
)

// Pool names carried on a warning.
const (
	PoolDevelopment = "development"
	PoolSales       = "sales"
)

type Warning struct {
	Code   string          `json:"code"`
	Pool   string          `json:"pool,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

type Reviewer struct {
	// Rounding drift up to Tolerance (in whole dollars) passes without a
	// warning. Zero means exact closure is required.
	Tolerance decimal.Decimal
	Logger    *zap.Logger
}

func NewReviewer(logger *zap.Logger) *Reviewer {
	return &Reviewer{Tolerance: decimal.NewFromInt(1), Logger: logger}
}

// Review inspects a finished distribution report and returns every warning
// it triggers, in a stable order. It does not mutate the report.
func (r *Reviewer) Review(dealID string, report engine.DistributionReport) []Warning {
	if r == nil {
		return nil
	}
	var out []Warning

	if report.Waterfall.Subtotal.IsNegative() {
		out = append(out, Warning{
			Code:   WarnNegativeSubtotal,
			Amount: report.Waterfall.Subtotal,
		})
	}

	out = append(out, r.reviewPool(PoolDevelopment, report.Waterfall.DevPool, report.DevAllocations, report.DevResidual)...)
	out = append(out, r.reviewPool(PoolSales, report.Waterfall.SalesPool, report.SalesAllocations, report.SalesResidual)...)

	if len(out) > 0 && r.Logger != nil {
		codes := make([]string, 0, len(out))
		for _, w := range out {
			codes = append(codes, w.Code)
		}
		r.Logger.Warn("distribution needs review",
			zap.String("deal_id", dealID),
			zap.Strings("warnings", codes),
		)
	}
	return out
}

func (r *Reviewer) reviewPool(pool string, total decimal.Decimal, allocs []engine.AgentAllocation, residual decimal.Decimal) []Warning {
	var out []Warning

	if total.IsPositive() && len(allocs) == 0 {
		out = append(out, Warning{Code: WarnNoParticipants, Pool: pool, Amount: total})
		return out
	}

	switch {
	case residual.IsNegative() && residual.Abs().Cmp(r.Tolerance) > 0:
		out = append(out, Warning{Code: WarnPoolOverAllocated, Pool: pool, Amount: residual})
	case residual.IsPositive() && residual.Cmp(r.Tolerance) > 0:
		out = append(out, Warning{Code: WarnPoolUnderAllocated, Pool: pool, Amount: residual})
	}
	return out
}
