package models

import "time"

// Setting is a key/value row for feature switches and the persisted rate
// table override. Values are stored as text and parsed by the settings
// service.
type Setting struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}
