package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"estatecrm/internal/cache"
	"estatecrm/internal/engine"
	"estatecrm/internal/metrics"
	"estatecrm/internal/repository"
)

// ROIReportService loads the full lead, deal and campaign sets and hands
// them to the engine. Attribution happens in memory on every build; the
// redis cache only shortcuts repeated identical requests.
type ROIReportService struct {
	Repo     repository.Repository
	Cache    *cache.ReportCache
	Channels []string
	Logger   *zap.Logger
}

func (s *ROIReportService) BuildReport(ctx context.Context, spec engine.WindowSpec) (engine.ROIReport, error) {
	if s == nil || s.Repo == nil {
		return engine.ROIReport{}, nil
	}
	window, err := engine.ResolveWindow(spec, time.Now().UTC())
	if err != nil {
		return engine.ROIReport{}, err
	}

	key := cache.ReportKey(window.Start, window.End, s.Channels)
	if raw, ok := s.Cache.Get(ctx, key); ok {
		var cached engine.ROIReport
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.ReportBuilds.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	started := time.Now()
	report, err := s.buildFresh(ctx, window)
	if err != nil {
		return engine.ROIReport{}, err
	}
	metrics.ReportBuilds.WithLabelValues("miss").Inc()
	metrics.ReportBuildSeconds.Observe(time.Since(started).Seconds())

	if raw, err := json.Marshal(report); err == nil {
		s.Cache.Set(ctx, key, raw)
	}
	return report, nil
}

// BuildReportForWindow skips the cache. The snapshot job uses it so a
// rebuild never reads its own stale output.
func (s *ROIReportService) BuildReportForWindow(ctx context.Context, window engine.Window) (engine.ROIReport, error) {
	if s == nil || s.Repo == nil {
		return engine.ROIReport{}, nil
	}
	return s.buildFresh(ctx, window)
}

func (s *ROIReportService) buildFresh(ctx context.Context, window engine.Window) (engine.ROIReport, error) {
	leads, err := s.Repo.ListAllLeads(ctx)
	if err != nil {
		return engine.ROIReport{}, err
	}
	deals, err := s.Repo.ListAllDeals(ctx)
	if err != nil {
		return engine.ROIReport{}, err
	}
	campaigns, err := s.Repo.ListAllCampaigns(ctx)
	if err != nil {
		return engine.ROIReport{}, err
	}
	if s.Logger != nil {
		s.Logger.Debug("building roi report",
			zap.Int("leads", len(leads)),
			zap.Int("deals", len(deals)),
			zap.Int("campaigns", len(campaigns)),
			zap.Time("window_start", window.Start),
			zap.Time("window_end", window.End),
		)
	}
	return engine.BuildROIReport(leads, deals, campaigns, window, s.Channels), nil
}

// InvalidateCache drops cached reports after any write that can shift
// attribution.
func (s *ROIReportService) InvalidateCache(ctx context.Context) {
	if s == nil {
		return
	}
	s.Cache.Invalidate(ctx)
}
