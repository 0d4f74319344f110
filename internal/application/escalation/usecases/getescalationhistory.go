package usecases

import (
	"context"

	"praxis/internal/application/escalation/dto"
	"praxis/internal/domain/escalation"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetEscalationHistoryQuery struct {
	WorkItemID uint
	OrgID      uint
}

type GetEscalationHistoryResult struct {
	WorkItemID uint                       `json:"work_item_id"`
	Records    []*dto.EscalationRecordDTO `json:"records"`
	Total      int                        `json:"total"`
}

type GetEscalationHistoryUseCase struct {
	workItemRepo workitem.Repository
	recordRepo   escalation.Repository
	logger       logger.Interface
}

func NewGetEscalationHistoryUseCase(
	workItemRepo workitem.Repository,
	recordRepo escalation.Repository,
	logger logger.Interface,
) *GetEscalationHistoryUseCase {
	return &GetEscalationHistoryUseCase{
		workItemRepo: workItemRepo,
		recordRepo:   recordRepo,
		logger:       logger,
	}
}

func (uc *GetEscalationHistoryUseCase) Execute(
	ctx context.Context,
	query GetEscalationHistoryQuery,
) (*GetEscalationHistoryResult, error) {
	if query.WorkItemID == 0 {
		return nil, errors.NewValidationError("work item ID is required")
	}
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	item, err := uc.workItemRepo.GetByID(ctx, query.WorkItemID)
	if err != nil {
		return nil, errors.NewNotFoundError("work item not found")
	}
	if item.OrgID() != query.OrgID {
		return nil, errors.NewNotFoundError("work item not found")
	}

	records, err := uc.recordRepo.FindByWorkItem(ctx, query.WorkItemID)
	if err != nil {
		uc.logger.Errorw("failed to query escalation history", "error", err, "work_item_id", query.WorkItemID)
		return nil, errors.NewInternalError("failed to query escalation history")
	}

	return &GetEscalationHistoryResult{
		WorkItemID: query.WorkItemID,
		Records:    dto.RecordsToDTOs(records),
		Total:      len(records),
	}, nil
}
