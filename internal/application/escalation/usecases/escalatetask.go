package usecases

import (
	"context"
	"fmt"
	"time"

	"praxis/internal/domain/escalation"
	evo "praxis/internal/domain/escalation/valueobjects"
	"praxis/internal/domain/workitem"

	auditvo "praxis/internal/domain/audit/valueobjects"
	outboxvo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type EscalateTaskCommand struct {
	WorkItemID uint
	OrgID      uint
	Reason     string
	Trigger    string
	ActorID    *uint
	ActorRole  string
}

type EscalateTaskResult struct {
	WorkItemID        uint   `json:"work_item_id"`
	RecordID          uint   `json:"record_id"`
	FromLevel         int    `json:"from_level"`
	ToLevel           int    `json:"to_level"`
	RecipientID       uint   `json:"recipient_id"`
	NotificationsSent int    `json:"notifications_sent"`
	EscalatedAt       string `json:"escalated_at"`
}

type EscalateTaskUseCase struct {
	workItemRepo workitem.Repository
	recordRepo   escalation.Repository
	directory    escalation.RecipientDirectory
	enqueuer     NotificationEnqueuer
	auditTrail   AuditTrail
	txManager    TxManager
	logger       logger.Interface
}

func NewEscalateTaskUseCase(
	workItemRepo workitem.Repository,
	recordRepo escalation.Repository,
	directory escalation.RecipientDirectory,
	enqueuer NotificationEnqueuer,
	auditTrail AuditTrail,
	txManager TxManager,
	logger logger.Interface,
) *EscalateTaskUseCase {
	return &EscalateTaskUseCase{
		workItemRepo: workItemRepo,
		recordRepo:   recordRepo,
		directory:    directory,
		enqueuer:     enqueuer,
		auditTrail:   auditTrail,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *EscalateTaskUseCase) Execute(
	ctx context.Context,
	cmd EscalateTaskCommand,
) (*EscalateTaskResult, error) {
	uc.logger.Infow("executing escalate task use case",
		"work_item_id", cmd.WorkItemID,
		"org_id", cmd.OrgID,
		"trigger", cmd.Trigger)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid escalate task command", "error", err)
		return nil, err
	}
	trigger, _ := evo.NewTrigger(cmd.Trigger)

	item, err := uc.workItemRepo.GetByID(ctx, cmd.WorkItemID)
	if err != nil {
		uc.logger.Errorw("failed to find work item", "error", err, "work_item_id", cmd.WorkItemID)
		return nil, errors.NewNotFoundError("work item not found")
	}
	if item.OrgID() != cmd.OrgID {
		return nil, errors.NewNotFoundError("work item not found")
	}
	if item.Status().IsTerminal() {
		return nil, errors.NewValidationError("cannot escalate a work item in a terminal status")
	}

	if item.EscalationLevel().IsMax() {
		uc.logger.Warnw("work item already at maximum escalation level",
			"work_item_id", item.ID(),
			"level", item.EscalationLevel().String())
		return nil, errors.NewMaxEscalationReachedError("work item is already at the maximum escalation level")
	}

	fromLevel := item.EscalationLevel()
	toLevel, err := fromLevel.Next()
	if err != nil {
		return nil, errors.NewMaxEscalationReachedError(err.Error())
	}

	candidates, err := uc.directory.GetEscalationRecipients(ctx, item.ProjectID(), toLevel)
	if err != nil {
		uc.logger.Errorw("recipient directory lookup failed", "error", err, "project_id", item.ProjectID())
		return nil, errors.NewInternalError("failed to resolve escalation recipients")
	}
	if len(candidates) == 0 {
		uc.logger.Warnw("no escalation recipients for level",
			"project_id", item.ProjectID(),
			"level", toLevel.String())
		return nil, errors.NewNoRecipientsFoundError(
			fmt.Sprintf("no recipients found for escalation level %s", toLevel.String()))
	}
	recipient := candidates[0]

	originalAssignee := item.AssigneeID()
	now := time.Now()

	if err := item.Escalate(toLevel, recipient.UserID, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	record, err := escalation.NewRecord(
		cmd.OrgID, item.ID(), fromLevel, toLevel,
		recipient.UserID, cmd.Reason, trigger, cmd.ActorID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The level change and its record commit or roll back together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.workItemRepo.Update(txCtx, item); err != nil {
			return fmt.Errorf("update work item: %w", err)
		}
		if err := uc.recordRepo.Save(txCtx, record); err != nil {
			return fmt.Errorf("save escalation record: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("escalation transaction failed", "error", err, "work_item_id", item.ID())
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("work item was escalated concurrently")
		}
		return nil, errors.NewInternalError("failed to escalate work item")
	}

	// Notifications and the audit write ride outside the transaction: their
	// failure must not unwind a committed escalation.
	sent := uc.enqueueNotifications(ctx, item, recipient.UserID, originalAssignee, toLevel.String(), cmd.Reason)
	uc.writeAudit(ctx, cmd, item, fromLevel.String(), toLevel.String(), recipient.UserID)

	uc.logger.Infow("work item escalated",
		"work_item_id", item.ID(),
		"from_level", int(fromLevel),
		"to_level", int(toLevel),
		"recipient_id", recipient.UserID,
		"notifications_sent", sent)

	return &EscalateTaskResult{
		WorkItemID:        item.ID(),
		RecordID:          record.ID(),
		FromLevel:         int(fromLevel),
		ToLevel:           int(toLevel),
		RecipientID:       recipient.UserID,
		NotificationsSent: sent,
		EscalatedAt:       now.Format(time.RFC3339),
	}, nil
}

func (uc *EscalateTaskUseCase) enqueueNotifications(
	ctx context.Context,
	item *workitem.WorkItem,
	recipientID uint,
	originalAssignee *uint,
	levelName string,
	reason string,
) int {
	payload := map[string]interface{}{
		"work_item_id": item.ID(),
		"title":        item.Title(),
		"level":        levelName,
		"reason":       reason,
	}

	sent := 0
	skipped, err := uc.enqueuer.Enqueue(ctx, item.OrgID(), recipientID, outboxvo.TypeEscalationAssigned, payload)
	if err != nil {
		uc.logger.Warnw("failed to enqueue recipient notification",
			"error", err, "work_item_id", item.ID(), "recipient_id", recipientID)
	} else if !skipped {
		sent++
	}

	if originalAssignee != nil && *originalAssignee != recipientID {
		skipped, err = uc.enqueuer.Enqueue(ctx, item.OrgID(), *originalAssignee, outboxvo.TypeTaskEscalated, payload)
		if err != nil {
			uc.logger.Warnw("failed to enqueue assignee notification",
				"error", err, "work_item_id", item.ID(), "assignee_id", *originalAssignee)
		} else if !skipped {
			sent++
		}
	}
	return sent
}

func (uc *EscalateTaskUseCase) writeAudit(
	ctx context.Context,
	cmd EscalateTaskCommand,
	item *workitem.WorkItem,
	fromLevel, toLevel string,
	recipientID uint,
) {
	actorID := uint(0)
	actorRole := cmd.ActorRole
	if cmd.ActorID != nil {
		actorID = *cmd.ActorID
	} else {
		actorRole = "system"
	}
	ev := AuditEvent{
		OrgID:        cmd.OrgID,
		ActorID:      actorID,
		ActorRole:    actorRole,
		Action:       auditvo.ActionEscalateTask,
		ResourceType: "work_item",
		ResourceID:   fmt.Sprintf("%d", item.ID()),
		Before:       map[string]interface{}{"escalation_level": fromLevel},
		After: map[string]interface{}{
			"escalation_level": toLevel,
			"escalated_to_id":  recipientID,
		},
	}
	if err := uc.auditTrail.Record(ctx, ev); err != nil {
		uc.logger.Warnw("failed to write audit entry", "error", err, "work_item_id", item.ID())
	}
}

func (uc *EscalateTaskUseCase) validateCommand(cmd EscalateTaskCommand) error {
	if cmd.WorkItemID == 0 {
		return errors.NewValidationError("work item ID is required")
	}
	if cmd.OrgID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("reason is required")
	}
	if _, err := evo.NewTrigger(cmd.Trigger); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
