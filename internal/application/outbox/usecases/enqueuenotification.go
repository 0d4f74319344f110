package usecases

import (
	"context"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

const skipReasonUserPreference = "user_preference"

type EnqueueNotificationCommand struct {
	OrgID   uint
	UserID  uint
	Type    string
	Payload map[string]interface{}
	Channel string
}

type EnqueueNotificationResult struct {
	NotificationID uint   `json:"notification_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Skipped        bool   `json:"skipped"`
	SkipReason     string `json:"skip_reason,omitempty"`
}

type EnqueueNotificationUseCase struct {
	notificationRepo outbox.Repository
	preferenceRepo   outbox.PreferenceRepository
	logger           logger.Interface
}

func NewEnqueueNotificationUseCase(
	notificationRepo outbox.Repository,
	preferenceRepo outbox.PreferenceRepository,
	logger logger.Interface,
) *EnqueueNotificationUseCase {
	return &EnqueueNotificationUseCase{
		notificationRepo: notificationRepo,
		preferenceRepo:   preferenceRepo,
		logger:           logger,
	}
}

// Execute checks the recipient's preferences and inserts a QUEUED row. A
// disabled event type or channel produces a skipped result and persists
// nothing.
func (uc *EnqueueNotificationUseCase) Execute(
	ctx context.Context,
	cmd EnqueueNotificationCommand,
) (*EnqueueNotificationResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid enqueue notification command", "error", err)
		return nil, err
	}
	notType, _ := vo.NewNotificationType(cmd.Type)
	channel, _ := vo.NewChannel(cmd.Channel)

	pref, err := uc.preferenceRepo.GetByUser(ctx, cmd.UserID, cmd.OrgID)
	if err != nil {
		uc.logger.Errorw("failed to load user preference", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to load user preference")
	}
	// No preference row means everything is allowed.
	if pref != nil && (!pref.AllowsEvent(notType) || !pref.AllowsChannel(channel)) {
		uc.logger.Debugw("notification skipped by user preference",
			"user_id", cmd.UserID,
			"type", cmd.Type,
			"channel", cmd.Channel)
		return &EnqueueNotificationResult{Skipped: true, SkipReason: skipReasonUserPreference}, nil
	}

	notification, err := outbox.NewNotification(cmd.OrgID, cmd.UserID, notType, cmd.Payload, channel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.notificationRepo.Save(ctx, notification); err != nil {
		uc.logger.Errorw("failed to persist notification", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to enqueue notification")
	}

	uc.logger.Infow("notification enqueued",
		"notification_id", notification.ID(),
		"user_id", cmd.UserID,
		"type", cmd.Type,
		"channel", cmd.Channel)

	return &EnqueueNotificationResult{
		NotificationID: notification.ID(),
		Status:         notification.Status().String(),
	}, nil
}

func (uc *EnqueueNotificationUseCase) validateCommand(cmd EnqueueNotificationCommand) error {
	if cmd.OrgID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if _, err := vo.NewNotificationType(cmd.Type); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if _, err := vo.NewChannel(cmd.Channel); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
