package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"estatecrm/internal/models"
)

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDistributeSixtyForty(t *testing.T) {
	pool := decimal.NewFromInt(25850)
	entries := []models.AgentShare{
		{Agent: "A", Role: models.RoleDevelopment, Percent: pct(60)},
		{Agent: "B", Role: models.RoleDevelopment, Percent: pct(40)},
	}
	dist := Distribute(pool, entries)
	if len(dist.Allocations) != 2 {
		t.Fatalf("allocations = %d, want 2", len(dist.Allocations))
	}
	if dist.Allocations[0].Amount.Cmp(decimal.NewFromInt(15510)) != 0 {
		t.Fatalf("A = %s, want 15510", dist.Allocations[0].Amount.String())
	}
	if dist.Allocations[1].Amount.Cmp(decimal.NewFromInt(10340)) != 0 {
		t.Fatalf("B = %s, want 10340", dist.Allocations[1].Amount.String())
	}
	if !dist.Residual.IsZero() {
		t.Fatalf("residual = %s, want 0", dist.Residual.String())
	}
}

func TestDistributeClosureAtFullAllocation(t *testing.T) {
	// Entries summing to 100% allocate the whole pool within one unit of
	// rounding, and the residual reflects exactly that remainder.
	pools := []int64{25850, 21150, 99999, 100001, 7}
	splits := [][]int64{{60, 40}, {33, 33, 34}, {50, 25, 25}, {100}}
	for _, p := range pools {
		pool := decimal.NewFromInt(p)
		for _, split := range splits {
			entries := make([]models.AgentShare, len(split))
			for i, s := range split {
				entries[i] = models.AgentShare{Agent: "a", Role: models.RoleSales, Percent: pct(s)}
			}
			dist := Distribute(pool, entries)
			sum := decimal.Zero
			for _, a := range dist.Allocations {
				sum = sum.Add(a.Amount)
			}
			if sum.Add(dist.Residual).Cmp(pool) != 0 {
				t.Fatalf("pool %d split %v: Σ=%s residual=%s", p, split, sum, dist.Residual)
			}
			if dist.Residual.Abs().Cmp(decimal.NewFromInt(1)) > 0 {
				t.Fatalf("pool %d split %v: residual %s exceeds rounding unit", p, split, dist.Residual)
			}
		}
	}
}

func TestDistributeUnderAllocationIsReportedNotRejected(t *testing.T) {
	pool := decimal.NewFromInt(10000)
	dist := Distribute(pool, []models.AgentShare{
		{Agent: "A", Role: models.RoleSales, Percent: pct(30)},
	})
	if dist.Residual.Cmp(decimal.NewFromInt(7000)) != 0 {
		t.Fatalf("residual = %s, want 7000", dist.Residual.String())
	}
}

func TestDistributeOverAllocationGoesNegative(t *testing.T) {
	pool := decimal.NewFromInt(10000)
	dist := Distribute(pool, []models.AgentShare{
		{Agent: "A", Role: models.RoleSales, Percent: pct(80)},
		{Agent: "B", Role: models.RoleSales, Percent: pct(40)},
	})
	if dist.Residual.Cmp(decimal.NewFromInt(-2000)) != 0 {
		t.Fatalf("residual = %s, want -2000", dist.Residual.String())
	}
}

func TestDistributeEmptyEntries(t *testing.T) {
	pool := decimal.NewFromInt(5000)
	dist := Distribute(pool, nil)
	if len(dist.Allocations) != 0 {
		t.Fatalf("allocations = %d, want 0", len(dist.Allocations))
	}
	if dist.Residual.Cmp(pool) != 0 {
		t.Fatalf("residual = %s, want the whole pool", dist.Residual.String())
	}
}

func TestDistributeIdempotent(t *testing.T) {
	pool := decimal.NewFromInt(21150)
	entries := []models.AgentShare{
		{Agent: "A", Role: models.RoleSales, Percent: pct(70)},
		{Agent: "B", Role: models.RoleSales, Percent: pct(30)},
	}
	first := Distribute(pool, entries)
	for i := 0; i < 10; i++ {
		again := Distribute(pool, entries)
		if again.Residual.Cmp(first.Residual) != 0 {
			t.Fatalf("run %d: residual changed", i)
		}
		for j := range again.Allocations {
			if again.Allocations[j].Amount.Cmp(first.Allocations[j].Amount) != 0 {
				t.Fatalf("run %d: allocation %d changed", i, j)
			}
		}
	}
}

func TestBuildDistributionReport(t *testing.T) {
	deal := models.Deal{
		FeeBuyer:  "100000",
		Deduction: "0",
		Distributions: datatypes.JSON([]byte(`[
			{"agent":"開發甲","role":"development","percent":60},
			{"agent":"開發乙","role":"development","percent":40},
			{"agent":"業務丙","role":"sales","percent":100}
		]`)),
	}
	report := BuildDistributionReport(deal, NewRates(0.53, 0.55))
	if report.Subtotal.Cmp(decimal.NewFromInt(100000)) != 0 {
		t.Fatalf("subtotal = %s", report.Subtotal.String())
	}
	if len(report.DevAllocations) != 2 || len(report.SalesAllocations) != 1 {
		t.Fatalf("allocations = %d dev, %d sales", len(report.DevAllocations), len(report.SalesAllocations))
	}
	if report.DevAllocations[0].Amount.Cmp(decimal.NewFromInt(15510)) != 0 {
		t.Fatalf("dev[0] = %s, want 15510", report.DevAllocations[0].Amount.String())
	}
	if report.SalesAllocations[0].Amount.Cmp(decimal.NewFromInt(21150)) != 0 {
		t.Fatalf("sales[0] = %s, want 21150", report.SalesAllocations[0].Amount.String())
	}
	if !report.DevResidual.IsZero() || !report.SalesResidual.IsZero() {
		t.Fatalf("residuals = %s / %s, want 0 / 0", report.DevResidual, report.SalesResidual)
	}
}

func TestBuildDistributionReportMalformedDistributions(t *testing.T) {
	deal := models.Deal{
		FeeBuyer:      "50000",
		Distributions: datatypes.JSON([]byte(`{bad json`)),
	}
	report := BuildDistributionReport(deal, NewRates(0.53, 0.55))
	if len(report.DevAllocations) != 0 || len(report.SalesAllocations) != 0 {
		t.Fatalf("expected empty allocations")
	}
	// Whole pools surface as residuals so the caller can warn.
	if report.DevResidual.Cmp(report.DevPool) != 0 {
		t.Fatalf("dev residual = %s, want %s", report.DevResidual, report.DevPool)
	}
	if report.SalesResidual.Cmp(report.SalesPool) != 0 {
		t.Fatalf("sales residual = %s, want %s", report.SalesResidual, report.SalesPool)
	}
}
