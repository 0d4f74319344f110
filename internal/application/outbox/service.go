package outbox

import (
	"context"

	"praxis/internal/application/outbox/usecases"
	domoutbox "praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/logger"
)

// Service is the notification outbox facade.
type Service struct {
	logger logger.Interface

	enqueue            *usecases.EnqueueNotificationUseCase
	processQueue       *usecases.ProcessQueueUseCase
	getStats           *usecases.GetOutboxStatsUseCase
	updatePreferences  *usecases.UpdatePreferencesUseCase
	releaseStaleClaims *usecases.ReleaseStaleClaimsUseCase
}

func NewService(
	notificationRepo domoutbox.Repository,
	preferenceRepo domoutbox.PreferenceRepository,
	channels []domoutbox.DeliveryChannel,
	auditor usecases.PreferenceAuditor,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		enqueue:            usecases.NewEnqueueNotificationUseCase(notificationRepo, preferenceRepo, logger),
		processQueue:       usecases.NewProcessQueueUseCase(notificationRepo, channels, logger),
		getStats:           usecases.NewGetOutboxStatsUseCase(notificationRepo, logger),
		updatePreferences:  usecases.NewUpdatePreferencesUseCase(preferenceRepo, auditor, logger),
		releaseStaleClaims: usecases.NewReleaseStaleClaimsUseCase(notificationRepo, logger),
	}
}

func (s *Service) EnqueueNotification(ctx context.Context, cmd usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error) {
	return s.enqueue.Execute(ctx, cmd)
}

func (s *Service) ProcessQueue(ctx context.Context, cmd usecases.ProcessQueueCommand) (*usecases.ProcessQueueResult, error) {
	return s.processQueue.Execute(ctx, cmd)
}

func (s *Service) GetOutboxStats(ctx context.Context, query usecases.GetOutboxStatsQuery) (*usecases.GetOutboxStatsResult, error) {
	return s.getStats.Execute(ctx, query)
}

func (s *Service) UpdateUserPreferences(ctx context.Context, cmd usecases.UpdatePreferencesCommand) (*usecases.UpdatePreferencesResult, error) {
	return s.updatePreferences.Execute(ctx, cmd)
}

func (s *Service) ReleaseStaleClaims(ctx context.Context, cmd usecases.ReleaseStaleClaimsCommand) (*usecases.ReleaseStaleClaimsResult, error) {
	return s.releaseStaleClaims.Execute(ctx, cmd)
}

// Enqueue adapts the service to the escalation engine's enqueuer interface.
// Escalation notifications default to the email channel.
func (s *Service) Enqueue(ctx context.Context, orgID, userID uint, notType vo.NotificationType, payload map[string]interface{}) (bool, error) {
	result, err := s.enqueue.Execute(ctx, usecases.EnqueueNotificationCommand{
		OrgID:   orgID,
		UserID:  userID,
		Type:    notType.String(),
		Payload: payload,
		Channel: vo.ChannelEmail.String(),
	})
	if err != nil {
		return false, err
	}
	return result.Skipped, nil
}
