package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ROISnapshot scopes.
const (
	ROIScopeChannel = "channel"
	ROIScopeProject = "project"
)

// ROISnapshot is one cached ROI row for a calendar-month period, rebuilt by
// the snapshot job. Period uses the "2006-01" form.
type ROISnapshot struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	Period string `gorm:"type:varchar(7);not null;uniqueIndex:idx_roi_period_scope_name;comment:統計月份"`
	Scope  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_roi_period_scope_name;comment:channel或project"`
	Name   string `gorm:"type:text;not null;uniqueIndex:idx_roi_period_scope_name;comment:管道或建案名稱"`

	NewLeads       int             `gorm:"not null;default:0"`
	QualifiedLeads int             `gorm:"not null;default:0"`
	AllocatedCost  decimal.Decimal `gorm:"type:numeric(30,2);not null;default:0"`
	CostPerLead    decimal.Decimal `gorm:"type:numeric(30,2);not null;default:0"`
	NoConversions  bool            `gorm:"not null;default:false"`
	EfficiencyTier string          `gorm:"type:varchar(30);not null;default:''"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (ROISnapshot) TableName() string {
	return "roi_snapshots"
}
