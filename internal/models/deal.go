package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Agent roles inside a deal's distribution list.
const (
	RoleDevelopment = "development"
	RoleSales       = "sales"
)

// Deal is a closed transaction. Fee fields are stored exactly as entered
// (thousands separators and all); the engine parses them tolerantly, so a
// bad cell degrades to zero instead of poisoning the subtotal.
type Deal struct {
	ID     string  `gorm:"primaryKey;type:text;comment:成交案唯一標識"`
	LeadID *string `gorm:"type:text;index;comment:關聯客戶"`

	ProjectName string `gorm:"type:text;index;comment:建案名稱"`
	CloseDate   string `gorm:"type:text;comment:成交日期(原始輸入)"`

	// Itemized service fees, one per party (買方/賣方/租方/屋主).
	FeeBuyer    string `gorm:"type:text;comment:買方服務費"`
	FeeSeller   string `gorm:"type:text;comment:賣方服務費"`
	FeeRenter   string `gorm:"type:text;comment:租方服務費"`
	FeeLandlord string `gorm:"type:text;comment:屋主服務費"`
	Deduction   string `gorm:"type:text;comment:扣項"`

	// Distributions is the per-agent split: [{agent, role, percent}].
	Distributions datatypes.JSON `gorm:"type:jsonb;comment:業績分配"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Deal) TableName() string {
	return "deals"
}

// FeeFields returns the itemized fees in a fixed order.
func (d Deal) FeeFields() []string {
	return []string{d.FeeBuyer, d.FeeSeller, d.FeeRenter, d.FeeLandlord}
}

// AgentShare is one entry of a deal's distribution list.
type AgentShare struct {
	Agent   string          `json:"agent"`
	Role    string          `json:"role"`
	Percent decimal.Decimal `json:"percent"`
}
