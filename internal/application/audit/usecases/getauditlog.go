package usecases

import (
	"context"
	"time"

	"praxis/internal/application/audit/dto"
	"praxis/internal/domain/audit"
	vo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetAuditLogQuery struct {
	OrgID        uint
	ActorID      uint
	Action       string
	ResourceType string
	ResourceID   string
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int

	// CrossTenant lifts the org filter for a super-admin view. Handlers set
	// it only after checking the caller's role.
	CrossTenant bool
}

type GetAuditLogResult struct {
	Entries  []*dto.AuditEntryDTO `json:"entries"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type GetAuditLogUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewGetAuditLogUseCase(auditRepo audit.Repository, logger logger.Interface) *GetAuditLogUseCase {
	return &GetAuditLogUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *GetAuditLogUseCase) Execute(
	ctx context.Context,
	query GetAuditLogQuery,
) (*GetAuditLogResult, error) {
	if query.OrgID == 0 && !query.CrossTenant {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.Action != "" {
		if _, err := vo.NewAction(query.Action); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := audit.Filter{
		ActorID:      query.ActorID,
		Action:       vo.Action(query.Action),
		ResourceType: query.ResourceType,
		ResourceID:   query.ResourceID,
		From:         query.From,
		To:           query.To,
		Page:         page,
		PageSize:     pageSize,
	}
	if !query.CrossTenant {
		filter.OrgID = query.OrgID
	}

	entries, total, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to query audit log", "error", err, "org_id", query.OrgID)
		return nil, errors.NewInternalError("failed to query audit log")
	}

	return &GetAuditLogResult{
		Entries:  dto.EntriesToDTOs(entries),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
