package models

type WorkItemModel struct {
	ID              uint   `gorm:"primaryKey"`
	OrgID           uint   `gorm:"not null;index"`
	ProjectID       uint   `gorm:"not null;index"`
	Title           string `gorm:"size:200;not null"`
	AssigneeID      *uint  `gorm:"index"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	SLADueAt        *int64 `gorm:"index"`
	EscalationLevel int    `gorm:"not null;default:0;index"`
	EscalatedToID   *uint
	LastEscalatedAt *int64
	Version         int   `gorm:"not null;default:1"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (WorkItemModel) TableName() string {
	return "work_items"
}
