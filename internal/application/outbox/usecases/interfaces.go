package usecases

import (
	"context"
)

type EnqueueNotificationExecutor interface {
	Execute(ctx context.Context, cmd EnqueueNotificationCommand) (*EnqueueNotificationResult, error)
}

type ProcessQueueExecutor interface {
	Execute(ctx context.Context, cmd ProcessQueueCommand) (*ProcessQueueResult, error)
}

type GetOutboxStatsExecutor interface {
	Execute(ctx context.Context, query GetOutboxStatsQuery) (*GetOutboxStatsResult, error)
}

type UpdatePreferencesExecutor interface {
	Execute(ctx context.Context, cmd UpdatePreferencesCommand) (*UpdatePreferencesResult, error)
}

type ReleaseStaleClaimsExecutor interface {
	Execute(ctx context.Context, cmd ReleaseStaleClaimsCommand) (*ReleaseStaleClaimsResult, error)
}
