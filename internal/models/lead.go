package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lead categories. Buyers and renters are demand-side funnel leads; sellers
// and landlords are supply-side inventory and are excluded from funnel math.
const (
	CategoryBuyer    = "買方"
	CategoryRenter   = "租方"
	CategorySeller   = "賣方"
	CategoryLandlord = "屋主"
)

// Lead statuses.
const (
	StatusNew          = "新進"
	StatusContacting   = "接洽中"
	StatusCommissioned = "委託"
	StatusClosed       = "成交"
	StatusLost         = "無效"
)

type Lead struct {
	ID       string `gorm:"primaryKey;type:text;comment:客戶唯一標識"`
	Name     string `gorm:"type:text;not null;comment:客戶姓名"`
	Category string `gorm:"type:text;not null;index;comment:類別(買方/租方/賣方/屋主)"`
	Status   string `gorm:"type:text;not null;index;default:'新進';comment:狀態"`

	// CreatedDate is the entry date exactly as the operator typed it.
	// Unparsable values keep the lead out of window-bounded aggregates but
	// never out of the record set.
	CreatedDate string `gorm:"type:text;comment:建檔日期(原始輸入)"`

	SourceLabel string         `gorm:"type:text;index;comment:來源(自由文字)"`
	ProjectTags datatypes.JSON `gorm:"type:jsonb;comment:關聯建案"`
	Region      string         `gorm:"type:text;comment:區域"`
	Remarks     string         `gorm:"type:text;comment:備註"`
	Phone       string         `gorm:"type:text;comment:電話"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}

// IsFunnel reports whether the lead counts toward channel funnel metrics.
func (l Lead) IsFunnel() bool {
	return l.Category == CategoryBuyer || l.Category == CategoryRenter
}

// IsQualified reports whether the lead has progressed past first contact.
// New and lost leads are unqualified; everything in between counts.
func (l Lead) IsQualified() bool {
	switch l.Status {
	case StatusContacting, StatusCommissioned, StatusClosed:
		return true
	default:
		return false
	}
}
