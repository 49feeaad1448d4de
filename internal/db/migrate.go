package db

import (
	"estatecrm/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Lead{},
		&models.Deal{},
		&models.Campaign{},
		&models.LeadChannelLabel{},
		&models.ROISnapshot{},
		&models.Setting{},
	)
}
