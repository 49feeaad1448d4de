package engine

import (
	"github.com/shopspring/decimal"

	"estatecrm/internal/models"
)

// SpendAllocation is the slice of a campaign's cost attributable to a
// reporting window.
type SpendAllocation struct {
	Cost        decimal.Decimal `json:"cost"`
	OverlapDays int             `json:"overlap_days"`
	// Prorated is false when the campaign carries no usable start date, in
	// which case its spend is excluded from totals entirely. Spend needs
	// dates; lead attribution does not.
	Prorated bool `json:"prorated"`
}

// AllocateSpend pro-rates a campaign's cost across the days it overlaps the
// window: dailyCost = cost / max(1, campaign days), allocated = round(daily
// × overlap days). An open-ended campaign runs through the window's end.
func AllocateSpend(c models.Campaign, w Window) SpendAllocation {
	start, ok := ParseDate(deref(c.StartDate))
	if !ok {
		return SpendAllocation{Cost: decimal.Zero}
	}
	end, ok := ParseDate(deref(c.EndDate))
	if !ok {
		end = w.End
	}
	if end.IsZero() {
		return SpendAllocation{Cost: decimal.Zero}
	}

	totalDays := OverlapDays(start, end, start, end)
	if totalDays < 1 {
		totalDays = 1
	}
	overlap := OverlapDays(start, end, w.Start, w.End)
	if overlap == 0 {
		return SpendAllocation{Cost: decimal.Zero, Prorated: true}
	}

	daily := ParseAmount(c.Cost).Div(decimal.NewFromInt(int64(totalDays)))
	return SpendAllocation{
		Cost:        round(daily.Mul(decimal.NewFromInt(int64(overlap)))),
		OverlapDays: overlap,
		Prorated:    true,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
