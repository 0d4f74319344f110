package escalation

import (
	"fmt"
	"time"

	vo "praxis/internal/domain/escalation/valueobjects"
	wivo "praxis/internal/domain/workitem/valueobjects"
)

// Record is one escalation event on a work item. It is immutable once
// created, except for the resolution fields.
//
// Invariant: at most one unresolved record may exist per work item, and the
// work item's escalation level always equals the ToLevel of its latest
// unresolved record (or 0 if none exists). The escalate use case enforces
// this by creating records inside the same transaction that moves the item.
type Record struct {
	id          uint
	orgID       uint
	workItemID  uint
	fromLevel   wivo.EscalationLevel
	toLevel     wivo.EscalationLevel
	recipientID uint
	reason      string
	trigger     vo.Trigger
	actorID     *uint
	resolvedAt  *time.Time
	resolution  string
	createdAt   time.Time
}

func NewRecord(
	orgID uint,
	workItemID uint,
	fromLevel wivo.EscalationLevel,
	toLevel wivo.EscalationLevel,
	recipientID uint,
	reason string,
	trigger vo.Trigger,
	actorID *uint,
) (*Record, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if workItemID == 0 {
		return nil, fmt.Errorf("work item ID is required")
	}
	if !fromLevel.IsValid() || !toLevel.IsValid() {
		return nil, fmt.Errorf("invalid escalation level")
	}
	if toLevel != fromLevel+1 {
		return nil, fmt.Errorf("escalation must raise the level by exactly one (from %d to %d)", fromLevel, toLevel)
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("reason is required")
	}
	if !trigger.IsValid() {
		return nil, fmt.Errorf("invalid trigger")
	}

	return &Record{
		orgID:       orgID,
		workItemID:  workItemID,
		fromLevel:   fromLevel,
		toLevel:     toLevel,
		recipientID: recipientID,
		reason:      reason,
		trigger:     trigger,
		actorID:     actorID,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructRecord(
	id uint,
	orgID uint,
	workItemID uint,
	fromLevel wivo.EscalationLevel,
	toLevel wivo.EscalationLevel,
	recipientID uint,
	reason string,
	trigger vo.Trigger,
	actorID *uint,
	resolvedAt *time.Time,
	resolution string,
	createdAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if workItemID == 0 {
		return nil, fmt.Errorf("work item ID is required")
	}
	if !trigger.IsValid() {
		return nil, fmt.Errorf("invalid trigger")
	}

	return &Record{
		id:          id,
		orgID:       orgID,
		workItemID:  workItemID,
		fromLevel:   fromLevel,
		toLevel:     toLevel,
		recipientID: recipientID,
		reason:      reason,
		trigger:     trigger,
		actorID:     actorID,
		resolvedAt:  resolvedAt,
		resolution:  resolution,
		createdAt:   createdAt,
	}, nil
}

func (r *Record) ID() uint                         { return r.id }
func (r *Record) OrgID() uint                      { return r.orgID }
func (r *Record) WorkItemID() uint                 { return r.workItemID }
func (r *Record) FromLevel() wivo.EscalationLevel  { return r.fromLevel }
func (r *Record) ToLevel() wivo.EscalationLevel    { return r.toLevel }
func (r *Record) RecipientID() uint                { return r.recipientID }
func (r *Record) Reason() string                   { return r.reason }
func (r *Record) Trigger() vo.Trigger              { return r.trigger }
func (r *Record) ActorID() *uint                   { return r.actorID }
func (r *Record) ResolvedAt() *time.Time           { return r.resolvedAt }
func (r *Record) Resolution() string               { return r.resolution }
func (r *Record) CreatedAt() time.Time             { return r.createdAt }

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Record) IsResolved() bool {
	return r.resolvedAt != nil
}

// Resolve marks the record resolved with a note. Resolving twice is an error.
func (r *Record) Resolve(note string, at time.Time) error {
	if r.IsResolved() {
		return fmt.Errorf("escalation record is already resolved")
	}
	if len(note) == 0 {
		return fmt.Errorf("resolution note is required")
	}
	r.resolvedAt = &at
	r.resolution = note
	return nil
}
