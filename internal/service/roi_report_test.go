package service

import (
	"context"
	"testing"

	"estatecrm/internal/engine"
	"estatecrm/internal/models"
)

var testChannels = []string{"591", "FB", "Google", "官網", "看板", "介紹"}

func strPtr(s string) *string { return &s }

func TestBuildReportMonthWindow(t *testing.T) {
	repo := newStubRepo()
	repo.leads = []models.Lead{
		{ID: "l1", Category: models.CategoryBuyer, Status: models.StatusContacting, CreatedDate: "2025-03-05", SourceLabel: "591"},
		{ID: "l2", Category: models.CategoryBuyer, Status: models.StatusNew, CreatedDate: "2025-03-12", SourceLabel: "FB廣告"},
		{ID: "l3", Category: models.CategorySeller, Status: models.StatusNew, CreatedDate: "2025-03-15", SourceLabel: "591"},
	}
	repo.campaigns = []models.Campaign{
		{ID: "c1", ChannelName: "591", Cost: "3000", StartDate: strPtr("2025-03-01"), EndDate: strPtr("2025-03-30")},
	}
	svc := &ROIReportService{Repo: repo, Channels: testChannels}

	report, err := svc.BuildReport(context.Background(), engine.WindowSpec{
		Kind: engine.WindowMonth, Year: 2025, Month: 3,
	})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Channels) != 2 {
		t.Fatalf("channel rows = %d, want 2 (591, FB)", len(report.Channels))
	}
	var row591 *engine.ROIEntry
	for i := range report.Channels {
		if report.Channels[i].Name == "591" {
			row591 = &report.Channels[i]
		}
	}
	if row591 == nil {
		t.Fatalf("missing 591 row in %+v", report.Channels)
	}
	// Seller lead is inventory, not funnel.
	if row591.NewLeads != 1 || row591.QualifiedLeads != 1 {
		t.Fatalf("591 row = %+v, want 1 new / 1 qualified", row591)
	}
	if !row591.AllocatedCost.Equal(row591.AllocatedCost.Round(0)) {
		t.Fatalf("allocated cost should be whole dollars, got %s", row591.AllocatedCost)
	}
}

func TestBuildReportNilCacheIsSafe(t *testing.T) {
	repo := newStubRepo()
	svc := &ROIReportService{Repo: repo, Channels: testChannels, Cache: nil}
	if _, err := svc.BuildReport(context.Background(), engine.WindowSpec{Kind: engine.WindowAll}); err != nil {
		t.Fatalf("nil cache should not error: %v", err)
	}
	svc.InvalidateCache(context.Background())
}

func TestBuildReportRejectsBadWindow(t *testing.T) {
	svc := &ROIReportService{Repo: newStubRepo(), Channels: testChannels}
	if _, err := svc.BuildReport(context.Background(), engine.WindowSpec{Kind: engine.WindowMonth, Year: 2025, Month: 13}); err == nil {
		t.Fatalf("month 13 should be rejected")
	}
	if _, err := svc.BuildReport(context.Background(), engine.WindowSpec{Kind: "希望"}); err == nil {
		t.Fatalf("unknown window kind should be rejected")
	}
}
