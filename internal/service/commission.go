package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"estatecrm/internal/audit"
	"estatecrm/internal/engine"
	"estatecrm/internal/metrics"
	"estatecrm/internal/models"
	"estatecrm/internal/repository"
)

// CommissionService computes the waterfall and per-agent payouts for a
// deal. Reports are recomputed from the stored deal on every request;
// nothing about a payout is persisted, so editing a fee or a percentage and
// re-requesting always reflects the current record.
type CommissionService struct {
	Repo     repository.Repository
	Settings *SettingsService
	Reviewer *audit.Reviewer
	Logger   *zap.Logger
}

// DealDistribution bundles the computed report with its audit warnings.
type DealDistribution struct {
	DealID   string                    `json:"deal_id"`
	Report   engine.DistributionReport `json:"report"`
	Warnings []audit.Warning           `json:"warnings"`
}

func (s *CommissionService) DistributionForDeal(ctx context.Context, dealID string) (*DealDistribution, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	deal, err := s.Repo.GetDealByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, fmt.Errorf("deal %s not found", dealID)
	}
	out := s.distribute(ctx, *deal)
	out.DealID = dealID
	return &out, nil
}

// PreviewDistribution runs the same computation over an unsaved deal so the
// front end can show payouts while the operator is still editing.
func (s *CommissionService) PreviewDistribution(ctx context.Context, deal models.Deal) DealDistribution {
	if s == nil {
		return DealDistribution{}
	}
	return s.distribute(ctx, deal)
}

func (s *CommissionService) distribute(ctx context.Context, deal models.Deal) DealDistribution {
	rates := engine.NewRates(0.53, 0.55)
	if s.Settings != nil {
		rates = s.Settings.Rates(ctx)
	}
	report := engine.BuildDistributionReport(deal, rates)
	metrics.DistributionBuilds.Inc()

	var warnings []audit.Warning
	if s.Reviewer != nil {
		warnings = s.Reviewer.Review(deal.ID, report)
		for _, w := range warnings {
			metrics.DistributionWarnings.WithLabelValues(w.Code).Inc()
		}
	}
	return DealDistribution{Report: report, Warnings: warnings}
}
