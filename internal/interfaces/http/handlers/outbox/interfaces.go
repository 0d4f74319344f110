package outbox

import (
	"context"

	"praxis/internal/application/outbox/usecases"
)

// Service interfaces for OutboxHandler - enables unit testing with mocks.

type enqueueNotificationService interface {
	EnqueueNotification(ctx context.Context, cmd usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error)
}

type processQueueService interface {
	ProcessQueue(ctx context.Context, cmd usecases.ProcessQueueCommand) (*usecases.ProcessQueueResult, error)
}

type outboxStatsService interface {
	GetOutboxStats(ctx context.Context, query usecases.GetOutboxStatsQuery) (*usecases.GetOutboxStatsResult, error)
}

type updatePreferencesService interface {
	UpdateUserPreferences(ctx context.Context, cmd usecases.UpdatePreferencesCommand) (*usecases.UpdatePreferencesResult, error)
}

// OutboxService is the full surface the handler needs; the application layer
// Service satisfies it.
type OutboxService interface {
	enqueueNotificationService
	processQueueService
	outboxStatsService
	updatePreferencesService
}
