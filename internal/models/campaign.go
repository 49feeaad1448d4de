package models

import "time"

// Campaign is one advertising placement for a project on a channel. Start
// and end dates are optional: a campaign without dates cannot be pro-rated
// into spend totals but can still be attributed leads by name match.
type Campaign struct {
	ID          string `gorm:"primaryKey;type:text;comment:廣告唯一標識"`
	ProjectName string `gorm:"type:text;index;comment:所屬建案"`
	ChannelName string `gorm:"type:text;index;comment:投放管道"`

	Cost      string  `gorm:"type:text;comment:費用(原始輸入)"`
	StartDate *string `gorm:"type:text;comment:開始日期"`
	EndDate   *string `gorm:"type:text;comment:結束日期(空值表示投放中)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
