package models

type EscalationRecordModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrgID       uint   `gorm:"not null;index"`
	WorkItemID  uint   `gorm:"not null;index"`
	FromLevel   int    `gorm:"not null"`
	ToLevel     int    `gorm:"not null"`
	RecipientID uint   `gorm:"not null;index"`
	Reason      string `gorm:"type:text;not null"`
	Trigger     string `gorm:"size:30;not null;index"`
	ActorID     *uint
	ResolvedAt  *int64 `gorm:"index"`
	Resolution  string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (EscalationRecordModel) TableName() string {
	return "escalation_records"
}
