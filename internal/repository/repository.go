package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"estatecrm/internal/models"
)

type ListLeadsParams struct {
	Limit    int
	Offset   int
	Category *string
	Status   *string
	Keyword  *string
	OrderBy  string
	Asc      *bool
}

type ListDealsParams struct {
	Limit   int
	Offset  int
	Project *string
	OrderBy string
	Asc     *bool
}

type ListCampaignsParams struct {
	Limit   int
	Offset  int
	Project *string
	Channel *string
	OrderBy string
	Asc     *bool
}

// Repository is the persistence boundary. Report building loads full record
// sets: the engine attributes in memory and owns no query logic.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Leads.
	CreateLead(ctx context.Context, item *models.Lead) error
	UpdateLead(ctx context.Context, item *models.Lead) error
	DeleteLead(ctx context.Context, id string) error
	GetLeadByID(ctx context.Context, id string) (*models.Lead, error)
	ListLeads(ctx context.Context, params ListLeadsParams) ([]models.Lead, error)
	CountLeads(ctx context.Context, params ListLeadsParams) (int64, error)
	ListAllLeads(ctx context.Context) ([]models.Lead, error)

	// Deals.
	CreateDeal(ctx context.Context, item *models.Deal) error
	UpdateDeal(ctx context.Context, item *models.Deal) error
	DeleteDeal(ctx context.Context, id string) error
	GetDealByID(ctx context.Context, id string) (*models.Deal, error)
	ListDeals(ctx context.Context, params ListDealsParams) ([]models.Deal, error)
	CountDeals(ctx context.Context, params ListDealsParams) (int64, error)
	ListAllDeals(ctx context.Context) ([]models.Deal, error)

	// Campaigns.
	CreateCampaign(ctx context.Context, item *models.Campaign) error
	UpdateCampaign(ctx context.Context, item *models.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error
	GetCampaignByID(ctx context.Context, id string) (*models.Campaign, error)
	ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]models.Campaign, error)
	CountCampaigns(ctx context.Context, params ListCampaignsParams) (int64, error)
	ListAllCampaigns(ctx context.Context) ([]models.Campaign, error)

	// Channel labels (attribution sweep).
	UpsertLeadChannelLabel(ctx context.Context, item *models.LeadChannelLabel) error
	ListLeadsWithoutLabel(ctx context.Context, limit int) ([]models.Lead, error)
	ListLeadsLabeledBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Lead, error)

	// ROI snapshots.
	ReplaceROISnapshots(ctx context.Context, period string, rows []models.ROISnapshot) error
	ListROISnapshots(ctx context.Context, period string) ([]models.ROISnapshot, error)

	// Settings.
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, item *models.Setting) error
}
