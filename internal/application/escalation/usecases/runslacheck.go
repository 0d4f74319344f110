package usecases

import (
	"context"
	"fmt"
	"time"

	evo "praxis/internal/domain/escalation/valueobjects"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type RunSLACheckCommand struct {
	OrgID    uint
	Cooldown time.Duration
}

// RunSLACheckResult summarizes one scan pass. Per-item failures are collected
// in Errors; they never abort the batch.
type RunSLACheckResult struct {
	Checked           int      `json:"checked"`
	Escalated         int      `json:"escalated"`
	NotificationsSent int      `json:"notifications_sent"`
	Errors            []string `json:"errors"`
}

type RunSLACheckUseCase struct {
	workItemRepo workitem.Repository
	escalate     EscalateTaskExecutor
	logger       logger.Interface
}

func NewRunSLACheckUseCase(
	workItemRepo workitem.Repository,
	escalate EscalateTaskExecutor,
	logger logger.Interface,
) *RunSLACheckUseCase {
	return &RunSLACheckUseCase{
		workItemRepo: workItemRepo,
		escalate:     escalate,
		logger:       logger,
	}
}

// Execute scans for SLA breaches and escalates each one a single level. The
// repository query already excludes items escalated within the cooldown, so
// overlapping or repeated scans cannot re-escalate the same breach. The batch
// is deliberately not transactional as a whole; partial progress is safe to
// re-run.
func (uc *RunSLACheckUseCase) Execute(
	ctx context.Context,
	cmd RunSLACheckCommand,
) (*RunSLACheckResult, error) {
	if cmd.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if cmd.Cooldown <= 0 {
		return nil, errors.NewValidationError("cooldown must be positive")
	}

	now := time.Now()
	uc.logger.Infow("running sla check", "org_id", cmd.OrgID, "cooldown", cmd.Cooldown.String())

	candidates, err := uc.workItemRepo.FindOverdue(ctx, cmd.OrgID, now, cmd.Cooldown)
	if err != nil {
		uc.logger.Errorw("failed to query overdue work items", "error", err, "org_id", cmd.OrgID)
		return nil, errors.NewInternalError("failed to query overdue work items")
	}

	result := &RunSLACheckResult{Checked: len(candidates), Errors: []string{}}
	for _, item := range candidates {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("scan aborted: %v", err))
			break
		}

		escResult, err := uc.escalate.Execute(ctx, EscalateTaskCommand{
			WorkItemID: item.ID(),
			OrgID:      cmd.OrgID,
			Reason:     fmt.Sprintf("SLA breached at %s", item.SLADueAt().Format(time.RFC3339)),
			Trigger:    evo.TriggerSLABreach.String(),
		})
		if err != nil {
			// Items at max level or without recipients stay in the summary
			// as errors; the scan moves on.
			uc.logger.Warnw("failed to escalate overdue work item",
				"error", err, "work_item_id", item.ID())
			result.Errors = append(result.Errors, fmt.Sprintf("work item %d: %v", item.ID(), err))
			continue
		}

		result.Escalated++
		result.NotificationsSent += escResult.NotificationsSent
	}

	uc.logger.Infow("sla check finished",
		"org_id", cmd.OrgID,
		"checked", result.Checked,
		"escalated", result.Escalated,
		"errors", len(result.Errors))

	return result, nil
}
