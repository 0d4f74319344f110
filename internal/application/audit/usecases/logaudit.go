package usecases

import (
	"context"

	"praxis/internal/domain/audit"
	vo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type LogAuditCommand struct {
	OrgID         uint
	ActorID       uint
	ActorRole     string
	Action        string
	ResourceType  string
	ResourceID    string
	Before        map[string]interface{}
	After         map[string]interface{}
	CorrelationID string
}

type LogAuditResult struct {
	EntryID    string `json:"entry_id"`
	Seq        uint64 `json:"seq"`
	RecordHash string `json:"record_hash"`
}

type LogAuditUseCase struct {
	auditRepo audit.Repository
	redactor  audit.Redactor
	logger    logger.Interface
}

func NewLogAuditUseCase(
	auditRepo audit.Repository,
	redactor audit.Redactor,
	logger logger.Interface,
) *LogAuditUseCase {
	return &LogAuditUseCase{
		auditRepo: auditRepo,
		redactor:  redactor,
		logger:    logger,
	}
}

// Execute redacts the snapshots and appends a chained entry. The repository
// owns the per-org serialization of the fetch-tail-then-insert sequence.
func (uc *LogAuditUseCase) Execute(
	ctx context.Context,
	cmd LogAuditCommand,
) (*LogAuditResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid log audit command", "error", err)
		return nil, err
	}
	action, _ := vo.NewAction(cmd.Action)

	before := cmd.Before
	after := cmd.After
	if uc.redactor != nil {
		before = uc.redactor.Redact(before)
		after = uc.redactor.Redact(after)
	}

	entry, err := audit.NewEntry(
		cmd.OrgID, cmd.ActorID, cmd.ActorRole, action,
		cmd.ResourceType, cmd.ResourceID,
		before, after, cmd.CorrelationID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry",
			"error", err,
			"org_id", cmd.OrgID,
			"action", cmd.Action)
		return nil, errors.NewInternalError("failed to append audit entry")
	}

	uc.logger.Debugw("audit entry appended",
		"entry_id", entry.ID(),
		"org_id", cmd.OrgID,
		"action", cmd.Action,
		"seq", entry.Seq())

	return &LogAuditResult{
		EntryID:    entry.ID(),
		Seq:        entry.Seq(),
		RecordHash: entry.RecordHash(),
	}, nil
}

func (uc *LogAuditUseCase) validateCommand(cmd LogAuditCommand) error {
	if cmd.OrgID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if cmd.ActorID == 0 && cmd.ActorRole != "system" {
		return errors.NewValidationError("actor ID is required")
	}
	if _, err := vo.NewAction(cmd.Action); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if len(cmd.ResourceType) == 0 {
		return errors.NewValidationError("resource type is required")
	}
	return nil
}
