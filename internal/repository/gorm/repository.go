package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecrm/internal/models"
	"estatecrm/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Leads ------------------------------------------------------------------

func (s *Store) CreateLead(ctx context.Context, item *models.Lead) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateLead(ctx context.Context, item *models.Lead) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteLead(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id).Error
}

func (s *Store) GetLeadByID(ctx context.Context, id string) (*models.Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Lead
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) leadQuery(ctx context.Context, params repository.ListLeadsParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Lead{})
	if params.Category != nil && strings.TrimSpace(*params.Category) != "" {
		query = query.Where("category = ?", strings.TrimSpace(*params.Category))
	}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	if params.Keyword != nil && strings.TrimSpace(*params.Keyword) != "" {
		kw := "%" + strings.TrimSpace(*params.Keyword) + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR remarks LIKE ?", kw, kw, kw)
	}
	return query
}

func (s *Store) ListLeads(ctx context.Context, params repository.ListLeadsParams) ([]models.Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(s.leadQuery(ctx, params), params.OrderBy, params.Asc, "created_at")
	var items []models.Lead
	err := query.Limit(normalizeLimit(params.Limit, 200)).Offset(normalizeOffset(params.Offset)).Find(&items).Error
	return items, err
}

func (s *Store) CountLeads(ctx context.Context, params repository.ListLeadsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.leadQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) ListAllLeads(ctx context.Context) ([]models.Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Lead
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&items).Error
	return items, err
}

// --- Deals ------------------------------------------------------------------

func (s *Store) CreateDeal(ctx context.Context, item *models.Deal) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateDeal(ctx context.Context, item *models.Deal) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteDeal(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Deal{}, "id = ?", id).Error
}

func (s *Store) GetDealByID(ctx context.Context, id string) (*models.Deal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Deal
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) dealQuery(ctx context.Context, params repository.ListDealsParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Deal{})
	if params.Project != nil && strings.TrimSpace(*params.Project) != "" {
		query = query.Where("project_name = ?", strings.TrimSpace(*params.Project))
	}
	return query
}

func (s *Store) ListDeals(ctx context.Context, params repository.ListDealsParams) ([]models.Deal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(s.dealQuery(ctx, params), params.OrderBy, params.Asc, "created_at")
	var items []models.Deal
	err := query.Limit(normalizeLimit(params.Limit, 200)).Offset(normalizeOffset(params.Offset)).Find(&items).Error
	return items, err
}

func (s *Store) CountDeals(ctx context.Context, params repository.ListDealsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.dealQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) ListAllDeals(ctx context.Context) ([]models.Deal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Deal
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&items).Error
	return items, err
}

// --- Campaigns --------------------------------------------------------------

func (s *Store) CreateCampaign(ctx context.Context, item *models.Campaign) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateCampaign(ctx context.Context, item *models.Campaign) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id).Error
}

func (s *Store) GetCampaignByID(ctx context.Context, id string) (*models.Campaign, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Campaign
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) campaignQuery(ctx context.Context, params repository.ListCampaignsParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Campaign{})
	if params.Project != nil && strings.TrimSpace(*params.Project) != "" {
		query = query.Where("project_name = ?", strings.TrimSpace(*params.Project))
	}
	if params.Channel != nil && strings.TrimSpace(*params.Channel) != "" {
		query = query.Where("channel_name = ?", strings.TrimSpace(*params.Channel))
	}
	return query
}

func (s *Store) ListCampaigns(ctx context.Context, params repository.ListCampaignsParams) ([]models.Campaign, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(s.campaignQuery(ctx, params), params.OrderBy, params.Asc, "created_at")
	var items []models.Campaign
	err := query.Limit(normalizeLimit(params.Limit, 200)).Offset(normalizeOffset(params.Offset)).Find(&items).Error
	return items, err
}

func (s *Store) CountCampaigns(ctx context.Context, params repository.ListCampaignsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.campaignQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) ListAllCampaigns(ctx context.Context) ([]models.Campaign, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Campaign
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&items).Error
	return items, err
}

// --- Channel labels ---------------------------------------------------------

func (s *Store) UpsertLeadChannelLabel(ctx context.Context, item *models.LeadChannelLabel) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lead_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"channel", "match_rule", "auto_labeled", "updated_at"}),
	}).Create(item).Error
}

func (s *Store) ListLeadsWithoutLabel(ctx context.Context, limit int) ([]models.Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Lead
	err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", s.db.Model(&models.LeadChannelLabel{}).Select("lead_id")).
		Order("created_at asc").
		Limit(normalizeLimit(limit, 500)).
		Find(&items).Error
	return items, err
}

func (s *Store) ListLeadsLabeledBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Lead
	err := s.db.WithContext(ctx).
		Joins("JOIN lead_channel_labels ON lead_channel_labels.lead_id = leads.id").
		Where("lead_channel_labels.updated_at < ?", cutoff).
		Order("leads.created_at asc").
		Limit(normalizeLimit(limit, 500)).
		Find(&items).Error
	return items, err
}

// --- ROI snapshots ----------------------------------------------------------

func (s *Store) ReplaceROISnapshots(ctx context.Context, period string, rows []models.ROISnapshot) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", period).Delete(&models.ROISnapshot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *Store) ListROISnapshots(ctx context.Context, period string) ([]models.ROISnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.ROISnapshot
	err := s.db.WithContext(ctx).
		Where("period = ?", period).
		Order("scope asc, name asc").
		Find(&items).Error
	return items, err
}

// --- Settings ---------------------------------------------------------------

func (s *Store) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Setting
	err := s.db.WithContext(ctx).First(&item, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertSetting(ctx context.Context, item *models.Setting) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(item).Error
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
