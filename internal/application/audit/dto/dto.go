package dto

import (
	"time"

	"praxis/internal/domain/audit"
)

type AuditEntryDTO struct {
	ID            string                 `json:"id"`
	OrgID         uint                   `json:"org_id"`
	ActorID       uint                   `json:"actor_id"`
	ActorRole     string                 `json:"actor_role"`
	Action        string                 `json:"action"`
	ResourceType  string                 `json:"resource_type"`
	ResourceID    string                 `json:"resource_id,omitempty"`
	Before        map[string]interface{} `json:"before,omitempty"`
	After         map[string]interface{} `json:"after,omitempty"`
	CorrelationID string                 `json:"correlation_id"`
	Seq           uint64                 `json:"seq"`
	PrevHash      string                 `json:"prev_hash"`
	RecordHash    string                 `json:"record_hash"`
	CreatedAt     time.Time              `json:"created_at"`
}

func EntryToDTO(e *audit.Entry) *AuditEntryDTO {
	if e == nil {
		return nil
	}
	return &AuditEntryDTO{
		ID:            e.ID(),
		OrgID:         e.OrgID(),
		ActorID:       e.ActorID(),
		ActorRole:     e.ActorRole(),
		Action:        e.Action().String(),
		ResourceType:  e.ResourceType(),
		ResourceID:    e.ResourceID(),
		Before:        e.Before(),
		After:         e.After(),
		CorrelationID: e.CorrelationID(),
		Seq:           e.Seq(),
		PrevHash:      e.PrevHash(),
		RecordHash:    e.RecordHash(),
		CreatedAt:     e.CreatedAt(),
	}
}

func EntriesToDTOs(entries []*audit.Entry) []*AuditEntryDTO {
	out := make([]*AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryToDTO(e))
	}
	return out
}
