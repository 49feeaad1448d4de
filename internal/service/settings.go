package service

import (
	"context"
	"strconv"
	"strings"

	"estatecrm/internal/config"
	"estatecrm/internal/engine"
	"estatecrm/internal/models"
	"estatecrm/internal/repository"
)

// Feature switches and rate override keys stored in the settings table.
const (
	FeatureAttributionSweep = "feature.attribution_sweep"
	FeatureROISnapshot      = "feature.roi_snapshot"

	SettingCompanyRate = "commission.company_rate"
	SettingDevShare    = "commission.dev_share"
)

func DefaultFeatureSwitches() map[string]bool {
	return map[string]bool{
		FeatureAttributionSweep: true,
		FeatureROISnapshot:      true,
	}
}

// SettingsService reads and writes the persisted overrides. The rate table
// falls back to config when no override row exists, so a fresh database
// behaves exactly like the shipped defaults.
type SettingsService struct {
	Repo     repository.Repository
	Defaults config.CommissionConfig
}

func (s *SettingsService) EnsureDefaultSwitches(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	for key, enabled := range DefaultFeatureSwitches() {
		existing, err := s.Repo.GetSetting(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		item := &models.Setting{Key: key, Value: strconv.FormatBool(enabled)}
		if err := s.Repo.UpsertSetting(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsService) IsEnabled(ctx context.Context, key string, fallback bool) bool {
	if s == nil || s.Repo == nil {
		return fallback
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	item, err := s.Repo.GetSetting(ctx, key)
	if err != nil || item == nil {
		return fallback
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(item.Value))
	if err != nil {
		return fallback
	}
	return enabled
}

func (s *SettingsService) SetEnabled(ctx context.Context, key string, enabled bool) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	return s.Repo.UpsertSetting(ctx, &models.Setting{
		Key:   strings.TrimSpace(key),
		Value: strconv.FormatBool(enabled),
	})
}

// Rates resolves the active rate table: stored overrides win, config
// defaults fill the rest. Out-of-range overrides are ignored.
func (s *SettingsService) Rates(ctx context.Context) engine.Rates {
	company := s.Defaults.CompanyRate
	devShare := s.Defaults.DevShare
	if s != nil && s.Repo != nil {
		if v, ok := s.rateOverride(ctx, SettingCompanyRate); ok {
			company = v
		}
		if v, ok := s.rateOverride(ctx, SettingDevShare); ok {
			devShare = v
		}
	}
	return engine.NewRates(company, devShare)
}

func (s *SettingsService) SetRates(ctx context.Context, company, devShare float64) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	if err := s.Repo.UpsertSetting(ctx, &models.Setting{
		Key:   SettingCompanyRate,
		Value: strconv.FormatFloat(company, 'f', -1, 64),
	}); err != nil {
		return err
	}
	return s.Repo.UpsertSetting(ctx, &models.Setting{
		Key:   SettingDevShare,
		Value: strconv.FormatFloat(devShare, 'f', -1, 64),
	})
}

func (s *SettingsService) rateOverride(ctx context.Context, key string) (float64, bool) {
	item, err := s.Repo.GetSetting(ctx, key)
	if err != nil || item == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(item.Value), 64)
	if err != nil || v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}
