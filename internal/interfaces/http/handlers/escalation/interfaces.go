package escalation

import (
	"context"

	"praxis/internal/application/escalation/usecases"
)

// Service interfaces for EscalationHandler - enables unit testing with mocks.

type escalateTaskService interface {
	EscalateTask(ctx context.Context, cmd usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error)
}

type resolveEscalationService interface {
	ResolveEscalation(ctx context.Context, cmd usecases.ResolveEscalationCommand) (*usecases.ResolveEscalationResult, error)
}

type runSLACheckService interface {
	RunSLACheck(ctx context.Context, cmd usecases.RunSLACheckCommand) (*usecases.RunSLACheckResult, error)
}

type overdueTasksService interface {
	GetOverdueTasks(ctx context.Context, query usecases.GetOverdueTasksQuery) (*usecases.GetOverdueTasksResult, error)
}

type approachingSLAService interface {
	GetTasksApproachingSLA(ctx context.Context, query usecases.GetApproachingSLAQuery) (*usecases.GetApproachingSLAResult, error)
}

type escalationHistoryService interface {
	GetTaskEscalationHistory(ctx context.Context, query usecases.GetEscalationHistoryQuery) (*usecases.GetEscalationHistoryResult, error)
}

type userWorkloadService interface {
	GetUserWorkload(ctx context.Context, query usecases.GetUserWorkloadQuery) (*usecases.GetUserWorkloadResult, error)
}

// EscalationService is the full surface the handler needs; the application
// layer Service satisfies it.
type EscalationService interface {
	escalateTaskService
	resolveEscalationService
	runSLACheckService
	overdueTasksService
	approachingSLAService
	escalationHistoryService
	userWorkloadService
}
