package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"estatecrm/internal/config"
	"estatecrm/internal/engine"
	"estatecrm/internal/metrics"
	"estatecrm/internal/models"
	"estatecrm/internal/repository"
)

// SnapshotService materializes monthly ROI rows so historical dashboards
// read from a table instead of recomputing closed months on every view.
// Each run rebuilds the current month plus a configured backfill, which
// also picks up late edits to past-month records.
type SnapshotService struct {
	Repo           repository.Repository
	Reports        *ROIReportService
	BackfillMonths int
	Flags          *SettingsService
	Logger         *zap.Logger
}

func NewSnapshotService(cfg config.SnapshotConfig, repo repository.Repository, reports *ROIReportService, flags *SettingsService, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		Repo:           repo,
		Reports:        reports,
		BackfillMonths: cfg.BackfillMonths,
		Flags:          flags,
		Logger:         logger,
	}
}

func (s *SnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Reports == nil {
		return nil
	}
	if s.Flags != nil && !s.Flags.IsEnabled(ctx, FeatureROISnapshot, true) {
		return nil
	}

	months := s.BackfillMonths
	if months < 0 {
		months = 0
	}
	now := time.Now().UTC()
	// Anchor on the first of the month so month arithmetic never skips or
	// repeats a period near month ends.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= months; i++ {
		target := base.AddDate(0, -i, 0)
		if err := s.rebuildMonth(ctx, target.Year(), int(target.Month())); err != nil {
			metrics.SnapshotRuns.WithLabelValues("error").Inc()
			return err
		}
	}
	metrics.SnapshotRuns.WithLabelValues("ok").Inc()
	return nil
}

func (s *SnapshotService) rebuildMonth(ctx context.Context, year, month int) error {
	window, err := engine.ResolveWindow(engine.WindowSpec{
		Kind:  engine.WindowMonth,
		Year:  year,
		Month: month,
	}, time.Now().UTC())
	if err != nil {
		return err
	}
	report, err := s.Reports.BuildReportForWindow(ctx, window)
	if err != nil {
		return err
	}

	period := window.Start.Format("2006-01")
	rows := flattenReport(period, report)
	if err := s.Repo.ReplaceROISnapshots(ctx, period, rows); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("roi snapshot rebuilt",
			zap.String("period", period),
			zap.Int("rows", len(rows)),
		)
	}
	return nil
}

func flattenReport(period string, report engine.ROIReport) []models.ROISnapshot {
	rows := make([]models.ROISnapshot, 0, len(report.Channels)+len(report.Projects))
	for _, entry := range report.Channels {
		rows = append(rows, snapshotRow(period, models.ROIScopeChannel, entry))
	}
	for _, project := range report.Projects {
		rows = append(rows, snapshotRow(period, models.ROIScopeProject, project.ROIEntry))
	}
	return rows
}

func snapshotRow(period, scope string, entry engine.ROIEntry) models.ROISnapshot {
	return models.ROISnapshot{
		Period:         period,
		Scope:          scope,
		Name:           entry.Name,
		NewLeads:       entry.NewLeads,
		QualifiedLeads: entry.QualifiedLeads,
		AllocatedCost:  entry.AllocatedCost,
		CostPerLead:    entry.CostPerQualifiedLead,
		NoConversions:  entry.NoConversions,
		EfficiencyTier: entry.EfficiencyTier,
	}
}
