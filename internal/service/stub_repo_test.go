package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"estatecrm/internal/models"
	"estatecrm/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
type stubRepo struct {
	leads     []models.Lead
	deals     []models.Deal
	campaigns []models.Campaign
	settings  map[string]string
	snapshots map[string][]models.ROISnapshot
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		settings:  map[string]string{},
		snapshots: map[string][]models.ROISnapshot{},
	}
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func (s *stubRepo) CreateLead(ctx context.Context, item *models.Lead) error { return nil }
func (s *stubRepo) UpdateLead(ctx context.Context, item *models.Lead) error { return nil }
func (s *stubRepo) DeleteLead(ctx context.Context, id string) error         { return nil }
func (s *stubRepo) GetLeadByID(ctx context.Context, id string) (*models.Lead, error) {
	return nil, nil
}
func (s *stubRepo) ListLeads(ctx context.Context, params repository.ListLeadsParams) ([]models.Lead, error) {
	return nil, nil
}
func (s *stubRepo) CountLeads(ctx context.Context, params repository.ListLeadsParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListAllLeads(ctx context.Context) ([]models.Lead, error) { return s.leads, nil }

func (s *stubRepo) CreateDeal(ctx context.Context, item *models.Deal) error { return nil }
func (s *stubRepo) UpdateDeal(ctx context.Context, item *models.Deal) error { return nil }
func (s *stubRepo) DeleteDeal(ctx context.Context, id string) error         { return nil }
func (s *stubRepo) GetDealByID(ctx context.Context, id string) (*models.Deal, error) {
	for i := range s.deals {
		if s.deals[i].ID == id {
			deal := s.deals[i]
			return &deal, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) ListDeals(ctx context.Context, params repository.ListDealsParams) ([]models.Deal, error) {
	return nil, nil
}
func (s *stubRepo) CountDeals(ctx context.Context, params repository.ListDealsParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListAllDeals(ctx context.Context) ([]models.Deal, error) { return s.deals, nil }

func (s *stubRepo) CreateCampaign(ctx context.Context, item *models.Campaign) error { return nil }
func (s *stubRepo) UpdateCampaign(ctx context.Context, item *models.Campaign) error { return nil }
func (s *stubRepo) DeleteCampaign(ctx context.Context, id string) error             { return nil }
func (s *stubRepo) GetCampaignByID(ctx context.Context, id string) (*models.Campaign, error) {
	return nil, nil
}
func (s *stubRepo) ListCampaigns(ctx context.Context, params repository.ListCampaignsParams) ([]models.Campaign, error) {
	return nil, nil
}
func (s *stubRepo) CountCampaigns(ctx context.Context, params repository.ListCampaignsParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListAllCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return s.campaigns, nil
}

func (s *stubRepo) UpsertLeadChannelLabel(ctx context.Context, item *models.LeadChannelLabel) error {
	return nil
}
func (s *stubRepo) ListLeadsWithoutLabel(ctx context.Context, limit int) ([]models.Lead, error) {
	return nil, nil
}
func (s *stubRepo) ListLeadsLabeledBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Lead, error) {
	return nil, nil
}

func (s *stubRepo) ReplaceROISnapshots(ctx context.Context, period string, rows []models.ROISnapshot) error {
	s.snapshots[period] = rows
	return nil
}
func (s *stubRepo) ListROISnapshots(ctx context.Context, period string) ([]models.ROISnapshot, error) {
	return s.snapshots[period], nil
}

func (s *stubRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	value, ok := s.settings[key]
	if !ok {
		return nil, nil
	}
	return &models.Setting{Key: key, Value: value}, nil
}
func (s *stubRepo) UpsertSetting(ctx context.Context, item *models.Setting) error {
	s.settings[item.Key] = item.Value
	return nil
}
