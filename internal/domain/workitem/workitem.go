package workitem

import (
	"fmt"
	"time"

	vo "praxis/internal/domain/workitem/valueobjects"
)

// WorkItem is the task-like entity the escalation subsystem operates on.
// It is owned by its project; this subsystem mutates only the escalation
// fields and never deletes work items.
type WorkItem struct {
	id              uint
	orgID           uint
	projectID       uint
	title           string
	assigneeID      *uint
	priority        vo.Priority
	status          vo.Status
	slaDueAt        *time.Time
	escalationLevel vo.EscalationLevel
	escalatedToID   *uint
	lastEscalatedAt *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewWorkItem(
	orgID uint,
	projectID uint,
	title string,
	priority vo.Priority,
	assigneeID *uint,
) (*WorkItem, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	slaDueAt := now.Add(time.Duration(priority.GetSLAHours()) * time.Hour)

	return &WorkItem{
		orgID:           orgID,
		projectID:       projectID,
		title:           title,
		assigneeID:      assigneeID,
		priority:        priority,
		status:          vo.StatusTodo,
		slaDueAt:        &slaDueAt,
		escalationLevel: vo.LevelNone,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructWorkItem(
	id uint,
	orgID uint,
	projectID uint,
	title string,
	assigneeID *uint,
	priority vo.Priority,
	status vo.Status,
	slaDueAt *time.Time,
	escalationLevel vo.EscalationLevel,
	escalatedToID *uint,
	lastEscalatedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*WorkItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("work item ID cannot be zero")
	}
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !escalationLevel.IsValid() {
		return nil, fmt.Errorf("invalid escalation level")
	}

	return &WorkItem{
		id:              id,
		orgID:           orgID,
		projectID:       projectID,
		title:           title,
		assigneeID:      assigneeID,
		priority:        priority,
		status:          status,
		slaDueAt:        slaDueAt,
		escalationLevel: escalationLevel,
		escalatedToID:   escalatedToID,
		lastEscalatedAt: lastEscalatedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (w *WorkItem) ID() uint                            { return w.id }
func (w *WorkItem) OrgID() uint                         { return w.orgID }
func (w *WorkItem) ProjectID() uint                     { return w.projectID }
func (w *WorkItem) Title() string                       { return w.title }
func (w *WorkItem) AssigneeID() *uint                   { return w.assigneeID }
func (w *WorkItem) Priority() vo.Priority               { return w.priority }
func (w *WorkItem) Status() vo.Status                   { return w.status }
func (w *WorkItem) SLADueAt() *time.Time                { return w.slaDueAt }
func (w *WorkItem) EscalationLevel() vo.EscalationLevel { return w.escalationLevel }
func (w *WorkItem) EscalatedToID() *uint                { return w.escalatedToID }
func (w *WorkItem) LastEscalatedAt() *time.Time         { return w.lastEscalatedAt }
func (w *WorkItem) Version() int                        { return w.version }
func (w *WorkItem) CreatedAt() time.Time                { return w.createdAt }
func (w *WorkItem) UpdatedAt() time.Time                { return w.updatedAt }

func (w *WorkItem) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work item ID cannot be zero")
	}
	w.id = id
	return nil
}

// ChangeStatus moves the work item to a new status. Terminal statuses are
// final; reopening goes through a new work item.
func (w *WorkItem) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if w.status.IsTerminal() && status != w.status {
		return fmt.Errorf("cannot change status of a %s work item", w.status)
	}
	if status == w.status {
		return nil
	}
	w.status = status
	w.updatedAt = time.Now()
	w.version++
	return nil
}

// Escalate raises the work item one level and records the new recipient.
// The target level must be exactly one above the current level.
func (w *WorkItem) Escalate(toLevel vo.EscalationLevel, recipientID uint, at time.Time) error {
	if w.escalationLevel.IsMax() {
		return fmt.Errorf("work item is already at the maximum escalation level")
	}
	if toLevel != w.escalationLevel+1 {
		return fmt.Errorf("cannot escalate from level %d to level %d", w.escalationLevel, toLevel)
	}
	if recipientID == 0 {
		return fmt.Errorf("escalation recipient is required")
	}

	w.escalationLevel = toLevel
	w.escalatedToID = &recipientID
	w.lastEscalatedAt = &at
	w.updatedAt = at
	w.version++

	return nil
}

// ResetEscalation returns the work item to level 0 and clears the recipient
// and timestamp fields. Called when the last unresolved escalation record for
// the item is resolved.
func (w *WorkItem) ResetEscalation() {
	w.escalationLevel = vo.LevelNone
	w.escalatedToID = nil
	w.lastEscalatedAt = nil
	w.updatedAt = time.Now()
	w.version++
}

// IsOverdue reports whether the SLA due time has passed and the item is still
// actionable.
func (w *WorkItem) IsOverdue(now time.Time) bool {
	if w.slaDueAt == nil {
		return false
	}
	if w.status.IsTerminal() {
		return false
	}
	return now.After(*w.slaDueAt)
}

// IsApproachingSLA reports whether the due time falls inside the warning
// window but has not yet passed.
func (w *WorkItem) IsApproachingSLA(now time.Time, window time.Duration) bool {
	if w.slaDueAt == nil || w.status.IsTerminal() {
		return false
	}
	if now.After(*w.slaDueAt) {
		return false
	}
	return w.slaDueAt.Sub(now) <= window
}

// InCooldown reports whether the item was escalated within the cooldown
// window. The SLA scanner skips items in cooldown so overlapping or repeated
// scans cannot re-escalate the same breach.
func (w *WorkItem) InCooldown(now time.Time, cooldown time.Duration) bool {
	if w.lastEscalatedAt == nil {
		return false
	}
	return now.Sub(*w.lastEscalatedAt) < cooldown
}
