package dto

import (
	"time"

	"praxis/internal/domain/escalation"
	"praxis/internal/domain/workitem"
)

type WorkItemDTO struct {
	ID              uint       `json:"id"`
	OrgID           uint       `json:"org_id"`
	ProjectID       uint       `json:"project_id"`
	Title           string     `json:"title"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	SLADueAt        *time.Time `json:"sla_due_at,omitempty"`
	EscalationLevel int        `json:"escalation_level"`
	EscalatedToID   *uint      `json:"escalated_to_id,omitempty"`
	LastEscalatedAt *time.Time `json:"last_escalated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func WorkItemToDTO(w *workitem.WorkItem) *WorkItemDTO {
	if w == nil {
		return nil
	}
	return &WorkItemDTO{
		ID:              w.ID(),
		OrgID:           w.OrgID(),
		ProjectID:       w.ProjectID(),
		Title:           w.Title(),
		AssigneeID:      w.AssigneeID(),
		Priority:        w.Priority().String(),
		Status:          w.Status().String(),
		SLADueAt:        w.SLADueAt(),
		EscalationLevel: int(w.EscalationLevel()),
		EscalatedToID:   w.EscalatedToID(),
		LastEscalatedAt: w.LastEscalatedAt(),
		CreatedAt:       w.CreatedAt(),
		UpdatedAt:       w.UpdatedAt(),
	}
}

func WorkItemsToDTOs(items []*workitem.WorkItem) []*WorkItemDTO {
	out := make([]*WorkItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, WorkItemToDTO(item))
	}
	return out
}

type EscalationRecordDTO struct {
	ID          uint       `json:"id"`
	WorkItemID  uint       `json:"work_item_id"`
	FromLevel   int        `json:"from_level"`
	ToLevel     int        `json:"to_level"`
	RecipientID uint       `json:"recipient_id"`
	Reason      string     `json:"reason"`
	Trigger     string     `json:"trigger"`
	ActorID     *uint      `json:"actor_id,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Resolution  string     `json:"resolution,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func RecordToDTO(r *escalation.Record) *EscalationRecordDTO {
	if r == nil {
		return nil
	}
	return &EscalationRecordDTO{
		ID:          r.ID(),
		WorkItemID:  r.WorkItemID(),
		FromLevel:   int(r.FromLevel()),
		ToLevel:     int(r.ToLevel()),
		RecipientID: r.RecipientID(),
		Reason:      r.Reason(),
		Trigger:     r.Trigger().String(),
		ActorID:     r.ActorID(),
		ResolvedAt:  r.ResolvedAt(),
		Resolution:  r.Resolution(),
		CreatedAt:   r.CreatedAt(),
	}
}

func RecordsToDTOs(records []*escalation.Record) []*EscalationRecordDTO {
	out := make([]*EscalationRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, RecordToDTO(r))
	}
	return out
}

type WorkloadDTO struct {
	UserID     uint             `json:"user_id"`
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
	Overdue    int64            `json:"overdue"`
	Escalated  int64            `json:"escalated"`
}
