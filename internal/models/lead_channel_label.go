package models

import "time"

// Match rules recorded on a materialized channel label.
const (
	MatchExact     = "exact"
	MatchSubstring = "substring"
	MatchOther     = "other"
)

// LeadChannelLabel is the materialized lead→channel attribution written by
// the sweep job. Reports recompute attribution on the fly; the label table
// exists so list screens can filter by channel without rescanning.
type LeadChannelLabel struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	LeadID      string    `gorm:"type:text;not null;uniqueIndex;comment:關聯客戶"`
	Channel     string    `gorm:"type:text;not null;index;comment:歸屬管道"`
	MatchRule   string    `gorm:"type:varchar(20);not null;comment:匹配方式"`
	AutoLabeled bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (LeadChannelLabel) TableName() string {
	return "lead_channel_labels"
}
