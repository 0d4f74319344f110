package models

// ProjectMemberModel backs the recipient directory. Role assignment is owned
// by the wider platform; this subsystem only reads it.
type ProjectMemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index:idx_member_project_role"`
	UserID    uint   `gorm:"not null;index"`
	Role      string `gorm:"size:40;not null;index:idx_member_project_role"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectMemberModel) TableName() string {
	return "project_members"
}
