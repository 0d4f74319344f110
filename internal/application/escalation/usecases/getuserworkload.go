package usecases

import (
	"context"
	"time"

	"praxis/internal/application/escalation/dto"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetUserWorkloadQuery struct {
	OrgID  uint
	UserID uint
}

type GetUserWorkloadResult struct {
	Workload *dto.WorkloadDTO `json:"workload"`
}

type GetUserWorkloadUseCase struct {
	workItemRepo workitem.Repository
	logger       logger.Interface
}

func NewGetUserWorkloadUseCase(workItemRepo workitem.Repository, logger logger.Interface) *GetUserWorkloadUseCase {
	return &GetUserWorkloadUseCase{workItemRepo: workItemRepo, logger: logger}
}

func (uc *GetUserWorkloadUseCase) Execute(
	ctx context.Context,
	query GetUserWorkloadQuery,
) (*GetUserWorkloadResult, error) {
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	counts, err := uc.workItemRepo.CountByAssignee(ctx, query.OrgID, query.UserID, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to aggregate workload", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to aggregate workload")
	}

	return &GetUserWorkloadResult{
		Workload: &dto.WorkloadDTO{
			UserID:     query.UserID,
			Total:      counts.Total,
			ByStatus:   counts.ByStatus,
			ByPriority: counts.ByPriority,
			Overdue:    counts.Overdue,
			Escalated:  counts.Escalated,
		},
	}, nil
}
