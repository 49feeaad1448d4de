package service

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"estatecrm/internal/audit"
	"estatecrm/internal/config"
	"estatecrm/internal/models"
)

func testDeal() models.Deal {
	return models.Deal{
		ID:          "d1",
		ProjectName: "陽光花園",
		FeeBuyer:    "100000",
		Distributions: datatypes.JSON([]byte(`[
			{"agent":"陳經理","role":"development","percent":"60"},
			{"agent":"林專員","role":"development","percent":"40"},
			{"agent":"王專員","role":"sales","percent":"100"}
		]`)),
	}
}

func newCommissionService(repo *stubRepo) *CommissionService {
	return &CommissionService{
		Repo: repo,
		Settings: &SettingsService{
			Repo:     repo,
			Defaults: config.CommissionConfig{CompanyRate: 0.53, DevShare: 0.55},
		},
		Reviewer: audit.NewReviewer(nil),
	}
}

func TestDistributionForDeal(t *testing.T) {
	repo := newStubRepo()
	repo.deals = []models.Deal{testDeal()}
	svc := newCommissionService(repo)

	dist, err := svc.DistributionForDeal(context.Background(), "d1")
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if dist == nil || dist.DealID != "d1" {
		t.Fatalf("dist = %+v", dist)
	}
	wf := dist.Report.Waterfall
	if wf.Company.String() != "53000" || wf.DevPool.String() != "25850" || wf.SalesPool.String() != "21150" {
		t.Fatalf("waterfall = %+v", wf)
	}
	if len(dist.Report.DevAllocations) != 2 || len(dist.Report.SalesAllocations) != 1 {
		t.Fatalf("allocations = %+v", dist.Report)
	}
	if dist.Report.DevAllocations[0].Amount.String() != "15510" {
		t.Fatalf("dev 60%% = %s, want 15510", dist.Report.DevAllocations[0].Amount)
	}
	if len(dist.Warnings) != 0 {
		t.Fatalf("clean deal should carry no warnings, got %+v", dist.Warnings)
	}
}

func TestDistributionForMissingDeal(t *testing.T) {
	svc := newCommissionService(newStubRepo())
	if _, err := svc.DistributionForDeal(context.Background(), "nope"); err == nil {
		t.Fatalf("missing deal should error")
	}
}

func TestDistributionUsesRateOverride(t *testing.T) {
	repo := newStubRepo()
	repo.deals = []models.Deal{testDeal()}
	svc := newCommissionService(repo)
	if err := svc.Settings.SetRates(context.Background(), 0.5, 0.5); err != nil {
		t.Fatalf("set rates: %v", err)
	}

	dist, err := svc.DistributionForDeal(context.Background(), "d1")
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	wf := dist.Report.Waterfall
	if wf.Company.String() != "50000" || wf.DevPool.String() != "25000" || wf.SalesPool.String() != "25000" {
		t.Fatalf("waterfall with 50/50 override = %+v", wf)
	}
}

func TestPreviewDistributionFlagsMissingSales(t *testing.T) {
	deal := testDeal()
	deal.Distributions = datatypes.JSON([]byte(`[
		{"agent":"陳經理","role":"development","percent":"100"}
	]`))
	svc := newCommissionService(newStubRepo())

	dist := svc.PreviewDistribution(context.Background(), deal)
	if len(dist.Warnings) != 1 || dist.Warnings[0].Code != audit.WarnNoParticipants {
		t.Fatalf("warnings = %+v, want one %s", dist.Warnings, audit.WarnNoParticipants)
	}
	if dist.Warnings[0].Pool != audit.PoolSales {
		t.Fatalf("pool = %s, want sales", dist.Warnings[0].Pool)
	}
}
