package models

import "gorm.io/datatypes"

// AuditEntryModel rows are append-only. The unique (org_id, seq) index is the
// serialization point for chain appends: two writers racing for the same slot
// collide on insert and the loser re-reads the tail.
type AuditEntryModel struct {
	ID            string         `gorm:"primaryKey;size:36"`
	OrgID         uint           `gorm:"not null;uniqueIndex:idx_audit_org_seq;index:idx_audit_org_created"`
	ActorID       uint           `gorm:"not null;index"`
	ActorRole     string         `gorm:"size:40;not null"`
	Action        string         `gorm:"size:40;not null;index"`
	ResourceType  string         `gorm:"size:60;not null;index:idx_audit_resource"`
	ResourceID    string         `gorm:"size:60;index:idx_audit_resource"`
	Before        datatypes.JSON `gorm:"type:json"`
	After         datatypes.JSON `gorm:"type:json"`
	CorrelationID string         `gorm:"size:36;index"`
	Seq           uint64         `gorm:"not null;uniqueIndex:idx_audit_org_seq"`
	PrevHash      string         `gorm:"size:64;not null"`
	RecordHash    string         `gorm:"size:64;not null"`
	CreatedAt     int64          `gorm:"not null;index:idx_audit_org_created"`
}

func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
