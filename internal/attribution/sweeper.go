// Package attribution materializes lead→channel labels in the background.
// The classifier itself lives in the engine package; the sweeper only walks
// the lead table and persists what the classifier decides.
package attribution

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

type Sweeper struct {
	Channels []string
	Batch    int
	Repo     repository.Repository
	Logger   *zap.Logger
}

func NewSweeper(cfg config.AttributionConfig, repo repository.Repository, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		Channels: cfg.Channels,
		Batch:    cfg.SweepBatch,
		Repo:     repo,
		Logger:   logger,
	}
}

// Sweep labels every lead that has no channel label yet. Label rows carry
// the match rule so a relabel after a channel list change is explainable.
func (s *Sweeper) Sweep(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	batch := s.Batch
	if batch <= 0 {
		batch = 500
	}

	labeled := 0
	for {
		leads, err := s.Repo.ListLeadsWithoutLabel(ctx, batch)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			break
		}
		for _, lead := range leads {
			if err := s.labelLead(ctx, lead); err != nil {
				if s.Logger != nil {
					s.Logger.Warn("label lead failed", zap.String("lead_id", lead.ID), zap.Error(err))
				}
				continue
			}
			labeled++
		}
		if len(leads) < batch {
			break
		}
	}
	if labeled > 0 {
		metrics.SweepLabeled.Add(float64(labeled))
		if s.Logger != nil {
			s.Logger.Info("attribution sweep done", zap.Int("labeled", labeled))
		}
	}
	return nil
}

// Relabel reclassifies leads whose label predates cutoff. Used after the
// channel list in config changes.
func (s *Sweeper) Relabel(ctx context.Context, cutoff time.Time) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	batch := s.Batch
	if batch <= 0 {
		batch = 500
	}
	for {
		leads, err := s.Repo.ListLeadsLabeledBefore(ctx, cutoff, batch)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			return nil
		}
		for _, lead := range leads {
			if err := s.labelLead(ctx, lead); err != nil {
				if s.Logger != nil {
					s.Logger.Warn("relabel lead failed", zap.String("lead_id", lead.ID), zap.Error(err))
				}
			}
		}
		if len(leads) < batch {
			return nil
		}
	}
}

func (s *Sweeper) labelLead(ctx context.Context, lead models.Lead) error {
	channel, rule := engine.ClassifyChannel(lead.SourceLabel, s.Channels)
	item := &models.LeadChannelLabel{
		LeadID:      lead.ID,
		Channel:     channel,
		MatchRule:   rule,
		AutoLabeled: true,
	}
	return s.Repo.UpsertLeadChannelLabel(ctx, item)
}
