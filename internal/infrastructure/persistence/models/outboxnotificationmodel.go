package models

import "gorm.io/datatypes"

type OutboxNotificationModel struct {
	ID            uint           `gorm:"primaryKey"`
	OrgID         uint           `gorm:"not null;index"`
	UserID        uint           `gorm:"not null;index"`
	Type          string         `gorm:"size:40;not null;index"`
	Payload       datatypes.JSON `gorm:"type:json"`
	Channel       string         `gorm:"size:20;not null"`
	Status        string         `gorm:"size:20;not null;index:idx_outbox_status_created"`
	Attempts      int            `gorm:"not null;default:0"`
	LastAttemptAt *int64
	ClaimedAt     *int64 `gorm:"index"`
	ErrorMessage  string `gorm:"type:text"`
	SentAt        *int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null;index:idx_outbox_status_created"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (OutboxNotificationModel) TableName() string {
	return "outbox_notifications"
}
