package usecases

import (
	"context"
	"time"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type GetOutboxStatsQuery struct {
	OrgID  uint
	Window time.Duration
}

type GetOutboxStatsResult struct {
	Queued          int64  `json:"queued"`
	Sending         int64  `json:"sending"`
	Sent            int64  `json:"sent"`
	Failed          int64  `json:"failed"`
	OldestQueuedAge string `json:"oldest_queued_age,omitempty"`
	Window          string `json:"window"`
}

type GetOutboxStatsUseCase struct {
	notificationRepo outbox.Repository
	logger           logger.Interface
}

func NewGetOutboxStatsUseCase(notificationRepo outbox.Repository, logger logger.Interface) *GetOutboxStatsUseCase {
	return &GetOutboxStatsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *GetOutboxStatsUseCase) Execute(
	ctx context.Context,
	query GetOutboxStatsQuery,
) (*GetOutboxStatsResult, error) {
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.Window <= 0 {
		return nil, errors.NewValidationError("stats window must be positive")
	}

	now := time.Now()
	counts, err := uc.notificationRepo.CountByStatusSince(ctx, query.OrgID, now.Add(-query.Window))
	if err != nil {
		uc.logger.Errorw("failed to aggregate outbox stats", "error", err, "org_id", query.OrgID)
		return nil, errors.NewInternalError("failed to aggregate outbox stats")
	}

	result := &GetOutboxStatsResult{
		Queued:  counts[vo.StatusQueued],
		Sending: counts[vo.StatusSending],
		Sent:    counts[vo.StatusSent],
		Failed:  counts[vo.StatusFailed],
		Window:  query.Window.String(),
	}

	age, err := uc.notificationRepo.OldestQueuedAge(ctx, query.OrgID, now)
	if err != nil {
		uc.logger.Warnw("failed to compute oldest queued age", "error", err, "org_id", query.OrgID)
	} else if age != nil {
		result.OldestQueuedAge = age.Round(time.Second).String()
	}

	return result, nil
}
