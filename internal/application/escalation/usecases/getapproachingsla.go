package usecases

import (
	"context"
	"time"

	"praxis/internal/application/escalation/dto"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetApproachingSLAQuery struct {
	OrgID  uint
	Window time.Duration
}

type GetApproachingSLAResult struct {
	Items  []*dto.WorkItemDTO `json:"items"`
	Total  int                `json:"total"`
	Window string             `json:"window"`
}

type GetApproachingSLAUseCase struct {
	workItemRepo workitem.Repository
	logger       logger.Interface
}

func NewGetApproachingSLAUseCase(workItemRepo workitem.Repository, logger logger.Interface) *GetApproachingSLAUseCase {
	return &GetApproachingSLAUseCase{workItemRepo: workItemRepo, logger: logger}
}

func (uc *GetApproachingSLAUseCase) Execute(
	ctx context.Context,
	query GetApproachingSLAQuery,
) (*GetApproachingSLAResult, error) {
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.Window <= 0 {
		return nil, errors.NewValidationError("warning window must be positive")
	}

	items, err := uc.workItemRepo.FindApproachingSLA(ctx, query.OrgID, time.Now(), query.Window)
	if err != nil {
		uc.logger.Errorw("failed to query approaching-sla work items", "error", err, "org_id", query.OrgID)
		return nil, errors.NewInternalError("failed to query approaching-sla work items")
	}

	return &GetApproachingSLAResult{
		Items:  dto.WorkItemsToDTOs(items),
		Total:  len(items),
		Window: query.Window.String(),
	}, nil
}
