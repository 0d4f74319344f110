package usecases

import (
	"context"
	"fmt"
	"time"

	auditvo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/domain/escalation"
	outboxvo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type ResolveEscalationCommand struct {
	RecordID  uint
	OrgID     uint
	Note      string
	ActorID   *uint
	ActorRole string
}

type ResolveEscalationResult struct {
	RecordID   uint   `json:"record_id"`
	WorkItemID uint   `json:"work_item_id"`
	LevelReset bool   `json:"level_reset"`
	ResolvedAt string `json:"resolved_at"`
}

type ResolveEscalationUseCase struct {
	workItemRepo workitem.Repository
	recordRepo   escalation.Repository
	enqueuer     NotificationEnqueuer
	auditTrail   AuditTrail
	txManager    TxManager
	logger       logger.Interface
}

func NewResolveEscalationUseCase(
	workItemRepo workitem.Repository,
	recordRepo escalation.Repository,
	enqueuer NotificationEnqueuer,
	auditTrail AuditTrail,
	txManager TxManager,
	logger logger.Interface,
) *ResolveEscalationUseCase {
	return &ResolveEscalationUseCase{
		workItemRepo: workItemRepo,
		recordRepo:   recordRepo,
		enqueuer:     enqueuer,
		auditTrail:   auditTrail,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ResolveEscalationUseCase) Execute(
	ctx context.Context,
	cmd ResolveEscalationCommand,
) (*ResolveEscalationResult, error) {
	uc.logger.Infow("executing resolve escalation use case",
		"record_id", cmd.RecordID,
		"org_id", cmd.OrgID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid resolve escalation command", "error", err)
		return nil, err
	}

	record, err := uc.recordRepo.GetByID(ctx, cmd.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to find escalation record", "error", err, "record_id", cmd.RecordID)
		return nil, errors.NewNotFoundError("escalation record not found")
	}
	if record.OrgID() != cmd.OrgID {
		return nil, errors.NewNotFoundError("escalation record not found")
	}
	if record.IsResolved() {
		return nil, errors.NewConflictError("escalation record is already resolved")
	}

	item, err := uc.workItemRepo.GetByID(ctx, record.WorkItemID())
	if err != nil {
		uc.logger.Errorw("failed to find work item for record", "error", err, "work_item_id", record.WorkItemID())
		return nil, errors.NewNotFoundError("work item not found")
	}

	now := time.Now()
	if err := record.Resolve(cmd.Note, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	levelReset := false
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.recordRepo.Update(txCtx, record); err != nil {
			return fmt.Errorf("update escalation record: %w", err)
		}

		unresolved, err := uc.recordRepo.CountUnresolvedByWorkItem(txCtx, item.ID())
		if err != nil {
			return fmt.Errorf("count unresolved records: %w", err)
		}
		if unresolved == 0 {
			item.ResetEscalation()
			if err := uc.workItemRepo.Update(txCtx, item); err != nil {
				return fmt.Errorf("reset work item level: %w", err)
			}
			levelReset = true
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("resolve escalation transaction failed", "error", err, "record_id", record.ID())
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("work item was modified concurrently")
		}
		return nil, errors.NewInternalError("failed to resolve escalation")
	}

	if assignee := item.AssigneeID(); assignee != nil {
		payload := map[string]interface{}{
			"work_item_id": item.ID(),
			"title":        item.Title(),
			"note":         cmd.Note,
		}
		if _, err := uc.enqueuer.Enqueue(ctx, item.OrgID(), *assignee, outboxvo.TypeEscalationResolved, payload); err != nil {
			uc.logger.Warnw("failed to enqueue resolution notification", "error", err, "work_item_id", item.ID())
		}
	}

	uc.writeAudit(ctx, cmd, record, levelReset)

	uc.logger.Infow("escalation resolved",
		"record_id", record.ID(),
		"work_item_id", item.ID(),
		"level_reset", levelReset)

	return &ResolveEscalationResult{
		RecordID:   record.ID(),
		WorkItemID: item.ID(),
		LevelReset: levelReset,
		ResolvedAt: now.Format(time.RFC3339),
	}, nil
}

func (uc *ResolveEscalationUseCase) writeAudit(
	ctx context.Context,
	cmd ResolveEscalationCommand,
	record *escalation.Record,
	levelReset bool,
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
		Action:       auditvo.ActionResolveEscalation,
		ResourceType: "escalation_record",
		ResourceID:   fmt.Sprintf("%d", record.ID()),
		After: map[string]interface{}{
			"resolution":  cmd.Note,
			"level_reset": levelReset,
		},
	}
	if err := uc.auditTrail.Record(ctx, ev); err != nil {
		uc.logger.Warnw("failed to write audit entry", "error", err, "record_id", record.ID())
	}
}

func (uc *ResolveEscalationUseCase) validateCommand(cmd ResolveEscalationCommand) error {
	if cmd.RecordID == 0 {
		return errors.NewValidationError("escalation record ID is required")
	}
	if cmd.OrgID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if len(cmd.Note) == 0 {
		return errors.NewValidationError("resolution note is required")
	}
	return nil
}
