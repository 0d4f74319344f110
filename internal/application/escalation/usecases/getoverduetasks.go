package usecases

import (
	"context"
	"time"

	"praxis/internal/application/escalation/dto"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetOverdueTasksQuery struct {
	OrgID    uint
	Cooldown time.Duration
}

type GetOverdueTasksResult struct {
	Items []*dto.WorkItemDTO `json:"items"`
	Total int                `json:"total"`
}

type GetOverdueTasksUseCase struct {
	workItemRepo workitem.Repository
	logger       logger.Interface
}

func NewGetOverdueTasksUseCase(workItemRepo workitem.Repository, logger logger.Interface) *GetOverdueTasksUseCase {
	return &GetOverdueTasksUseCase{workItemRepo: workItemRepo, logger: logger}
}

func (uc *GetOverdueTasksUseCase) Execute(
	ctx context.Context,
	query GetOverdueTasksQuery,
) (*GetOverdueTasksResult, error) {
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	cooldown := query.Cooldown
	if cooldown < 0 {
		cooldown = 0
	}

	items, err := uc.workItemRepo.FindOverdue(ctx, query.OrgID, time.Now(), cooldown)
	if err != nil {
		uc.logger.Errorw("failed to query overdue work items", "error", err, "org_id", query.OrgID)
		return nil, errors.NewInternalError("failed to query overdue work items")
	}

	return &GetOverdueTasksResult{
		Items: dto.WorkItemsToDTOs(items),
		Total: len(items),
	}, nil
}
