package models

import "gorm.io/datatypes"

type UserPreferenceModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_pref_user_org"`
	OrgID     uint           `gorm:"not null;uniqueIndex:idx_pref_user_org"`
	Channels  datatypes.JSON `gorm:"type:json"`
	Events    datatypes.JSON `gorm:"type:json"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
