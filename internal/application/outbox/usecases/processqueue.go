package usecases

import (
	"context"
	"fmt"
	"time"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type ProcessQueueCommand struct {
	BatchSize      int
	MaxAttempts    int
	PerItemTimeout time.Duration
}

type ProcessQueueResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

type ProcessQueueUseCase struct {
	notificationRepo outbox.Repository
	channels         map[vo.Channel]outbox.DeliveryChannel
	logger           logger.Interface
}

func NewProcessQueueUseCase(
	notificationRepo outbox.Repository,
	channels []outbox.DeliveryChannel,
	logger logger.Interface,
) *ProcessQueueUseCase {
	byKind := make(map[vo.Channel]outbox.DeliveryChannel, len(channels))
	for _, ch := range channels {
		byKind[ch.Kind()] = ch
	}
	return &ProcessQueueUseCase{
		notificationRepo: notificationRepo,
		channels:         byKind,
		logger:           logger,
	}
}

// Execute drains one batch of the outbox. The id selection is advisory; only
// a successful ClaimForSending confers ownership of a row, so overlapping
// drains deliver each notification at most once. Rows the claim loses are
// counted as skipped, not failed.
func (uc *ProcessQueueUseCase) Execute(
	ctx context.Context,
	cmd ProcessQueueCommand,
) (*ProcessQueueResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	ids, err := uc.notificationRepo.FindQueuedIDs(ctx, cmd.BatchSize, cmd.MaxAttempts)
	if err != nil {
		uc.logger.Errorw("failed to select queued notifications", "error", err)
		return nil, errors.NewInternalError("failed to select queued notifications")
	}

	result := &ProcessQueueResult{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			uc.logger.Warnw("queue drain aborted", "error", err, "remaining", len(ids)-result.Processed)
			break
		}

		claimed, err := uc.notificationRepo.ClaimForSending(ctx, id, cmd.MaxAttempts, time.Now())
		if err != nil {
			uc.logger.Errorw("claim failed", "error", err, "notification_id", id)
			result.Skipped++
			continue
		}
		if !claimed {
			// Another worker owns this row.
			result.Skipped++
			continue
		}

		result.Processed++
		if uc.deliverOne(ctx, id, cmd) {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	if result.Processed > 0 || result.Skipped > 0 {
		uc.logger.Infow("outbox drain finished",
			"processed", result.Processed,
			"sent", result.Sent,
			"failed", result.Failed,
			"skipped", result.Skipped)
	}
	return result, nil
}

func (uc *ProcessQueueUseCase) deliverOne(ctx context.Context, id uint, cmd ProcessQueueCommand) bool {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load claimed notification", "error", err, "notification_id", id)
		return false
	}

	sendErr := uc.send(ctx, notification, cmd.PerItemTimeout)

	now := time.Now()
	if sendErr == nil {
		if err := notification.MarkSent(now); err != nil {
			uc.logger.Errorw("failed to mark notification sent", "error", err, "notification_id", id)
			return false
		}
	} else {
		uc.logger.Warnw("delivery attempt failed",
			"error", sendErr,
			"notification_id", id,
			"attempt", notification.Attempts()+1,
			"max_attempts", cmd.MaxAttempts)
		if err := notification.MarkFailedAttempt(cmd.MaxAttempts, sendErr, now); err != nil {
			uc.logger.Errorw("failed to record delivery failure", "error", err, "notification_id", id)
			return false
		}
	}

	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		uc.logger.Errorw("failed to persist delivery outcome", "error", err, "notification_id", id)
		return false
	}
	return sendErr == nil
}

func (uc *ProcessQueueUseCase) send(ctx context.Context, n *outbox.Notification, timeout time.Duration) error {
	channel, ok := uc.channels[n.Channel()]
	if !ok {
		return fmt.Errorf("no delivery channel registered for %s", n.Channel())
	}

	sendCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return channel.Send(sendCtx, n)
}

func (uc *ProcessQueueUseCase) validateCommand(cmd ProcessQueueCommand) error {
	if cmd.BatchSize <= 0 {
		return errors.NewValidationError("batch size must be positive")
	}
	if cmd.MaxAttempts <= 0 {
		return errors.NewValidationError("max attempts must be positive")
	}
	return nil
}
