package usecases

import (
	"context"
	"time"

	"praxis/internal/domain/outbox"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type ReleaseStaleClaimsCommand struct {
	Lease time.Duration
}

type ReleaseStaleClaimsResult struct {
	Released int64 `json:"released"`
}

type ReleaseStaleClaimsUseCase struct {
	notificationRepo outbox.Repository
	logger           logger.Interface
}

func NewReleaseStaleClaimsUseCase(notificationRepo outbox.Repository, logger logger.Interface) *ReleaseStaleClaimsUseCase {
	return &ReleaseStaleClaimsUseCase{notificationRepo: notificationRepo, logger: logger}
}

// Execute returns SENDING rows whose claim outlived the lease to QUEUED. A
// worker that crashed mid-delivery leaves such rows behind; without the
// reaper they would be stuck in-flight forever.
func (uc *ReleaseStaleClaimsUseCase) Execute(
	ctx context.Context,
	cmd ReleaseStaleClaimsCommand,
) (*ReleaseStaleClaimsResult, error) {
	if cmd.Lease <= 0 {
		return nil, errors.NewValidationError("claim lease must be positive")
	}

	released, err := uc.notificationRepo.ReleaseStaleClaims(ctx, time.Now().Add(-cmd.Lease))
	if err != nil {
		uc.logger.Errorw("failed to release stale claims", "error", err)
		return nil, errors.NewInternalError("failed to release stale claims")
	}

	if released > 0 {
		uc.logger.Warnw("released stale outbox claims", "released", released, "lease", cmd.Lease.String())
	}
	return &ReleaseStaleClaimsResult{Released: released}, nil
}
