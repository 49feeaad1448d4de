package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"estatecrm/internal/models"
)

func TestSplitFeesStandardCase(t *testing.T) {
	// 100000 at 53% company / 55% dev share: 53000 / 25850 / 21150.
	rates := NewRates(0.53, 0.55)
	wf := SplitFees([]string{"100000", "0", "0", "0"}, "0", rates)
	if wf.Subtotal.Cmp(decimal.NewFromInt(100000)) != 0 {
		t.Fatalf("subtotal = %s, want 100000", wf.Subtotal.String())
	}
	if wf.Company.Cmp(decimal.NewFromInt(53000)) != 0 {
		t.Fatalf("company = %s, want 53000", wf.Company.String())
	}
	if wf.DevPool.Cmp(decimal.NewFromInt(25850)) != 0 {
		t.Fatalf("dev_pool = %s, want 25850", wf.DevPool.String())
	}
	if wf.SalesPool.Cmp(decimal.NewFromInt(21150)) != 0 {
		t.Fatalf("sales_pool = %s, want 21150", wf.SalesPool.String())
	}
}

func TestSplitFeesClosure(t *testing.T) {
	// company + dev + sales must equal the subtotal exactly, for any
	// subtotal and any rates, because sales is computed by subtraction.
	rates := []Rates{
		NewRates(0.53, 0.55),
		NewRates(0.50, 0.50),
		NewRates(0.33, 0.77),
		NewRates(0.07, 0.93),
		NewRates(1.0, 0.5),
		NewRates(0, 0),
	}
	subtotals := []string{"100000", "99999", "1", "12347", "7654321", "3"}
	for _, r := range rates {
		for _, sub := range subtotals {
			wf := SplitFees([]string{sub}, "", r)
			total := wf.Company.Add(wf.DevPool).Add(wf.SalesPool)
			if total.Cmp(wf.Subtotal) != 0 {
				t.Fatalf("rates %+v subtotal %s: %s + %s + %s = %s", r, sub,
					wf.Company, wf.DevPool, wf.SalesPool, total)
			}
		}
	}
}

func TestSplitFeesSumsAllPartiesMinusDeduction(t *testing.T) {
	wf := SplitFees([]string{"60,000", "40,000", "", "junk"}, "5,000", NewRates(0.53, 0.55))
	if wf.Subtotal.Cmp(decimal.NewFromInt(95000)) != 0 {
		t.Fatalf("subtotal = %s, want 95000", wf.Subtotal.String())
	}
}

func TestSplitFeesNegativeSubtotalPropagates(t *testing.T) {
	// A deduction larger than the fees signals a data-entry mistake; it is
	// passed through, not clamped.
	wf := SplitFees([]string{"1000"}, "5000", NewRates(0.53, 0.55))
	if wf.Subtotal.Cmp(decimal.NewFromInt(-4000)) != 0 {
		t.Fatalf("subtotal = %s, want -4000", wf.Subtotal.String())
	}
	total := wf.Company.Add(wf.DevPool).Add(wf.SalesPool)
	if total.Cmp(wf.Subtotal) != 0 {
		t.Fatalf("closure broken on negative subtotal: %s != %s", total, wf.Subtotal)
	}
}

func TestSubtotal(t *testing.T) {
	deal := models.Deal{FeeBuyer: "30,000", FeeSeller: "70,000", Deduction: "2,500"}
	got := Subtotal(deal)
	if got.Cmp(decimal.NewFromInt(97500)) != 0 {
		t.Fatalf("subtotal = %s, want 97500", got.String())
	}
}
