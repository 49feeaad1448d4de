package engine

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"estatecrm/internal/models"
)

// AgentAllocation is one agent's computed payout from a pool.
type AgentAllocation struct {
	Agent   string          `json:"agent"`
	Role    string          `json:"role"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// Distribution is the result of splitting one pool across its agents.
// Residual is the unallocated remainder: a diagnostic value, not an error.
// Percentages are not forced to sum to 100.
type Distribution struct {
	Allocations []AgentAllocation `json:"allocations"`
	Residual    decimal.Decimal   `json:"residual"`
}

// Distribute splits a pool by percentage: amount = round(pool × percent /
// 100) per entry, residual = pool − Σ amounts. Every call recomputes from
// scratch; there is no running state to patch, so re-running with the same
// inputs always yields the same result.
func Distribute(pool decimal.Decimal, entries []models.AgentShare) Distribution {
	dist := Distribution{
		Allocations: make([]AgentAllocation, 0, len(entries)),
		Residual:    pool,
	}
	hundred := decimal.NewFromInt(100)
	for _, entry := range entries {
		amount := round(pool.Mul(entry.Percent).Div(hundred))
		dist.Allocations = append(dist.Allocations, AgentAllocation{
			Agent:   entry.Agent,
			Role:    entry.Role,
			Percent: entry.Percent,
			Amount:  amount,
		})
		dist.Residual = dist.Residual.Sub(amount)
	}
	return dist
}

// DistributionReport is the full payout picture for one deal.
type DistributionReport struct {
	Waterfall
	DevAllocations   []AgentAllocation `json:"dev_allocations"`
	SalesAllocations []AgentAllocation `json:"sales_allocations"`
	DevResidual      decimal.Decimal   `json:"dev_residual"`
	SalesResidual    decimal.Decimal   `json:"sales_residual"`
}

// BuildDistributionReport runs the waterfall over a deal's fees and then
// distributes each pool across the deal's agent list by role. A missing or
// malformed distribution list degrades to empty: the pools then surface in
// full as residuals.
func BuildDistributionReport(deal models.Deal, rates Rates) DistributionReport {
	wf := SplitFees(deal.FeeFields(), deal.Deduction, rates)

	var shares []models.AgentShare
	if len(deal.Distributions) > 0 {
		_ = json.Unmarshal(deal.Distributions, &shares)
	}
	var dev, sales []models.AgentShare
	for _, share := range shares {
		switch share.Role {
		case models.RoleDevelopment:
			dev = append(dev, share)
		default:
			sales = append(sales, share)
		}
	}

	devDist := Distribute(wf.DevPool, dev)
	salesDist := Distribute(wf.SalesPool, sales)
	return DistributionReport{
		Waterfall:        wf,
		DevAllocations:   devDist.Allocations,
		SalesAllocations: salesDist.Allocations,
		DevResidual:      devDist.Residual,
		SalesResidual:    salesDist.Residual,
	}
}
