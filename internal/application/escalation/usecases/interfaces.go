package usecases

import (
	"context"

	auditvo "praxis/internal/domain/audit/valueobjects"
	outboxvo "praxis/internal/domain/outbox/valueobjects"
)

type EscalateTaskExecutor interface {
	Execute(ctx context.Context, cmd EscalateTaskCommand) (*EscalateTaskResult, error)
}

type ResolveEscalationExecutor interface {
	Execute(ctx context.Context, cmd ResolveEscalationCommand) (*ResolveEscalationResult, error)
}

type RunSLACheckExecutor interface {
	Execute(ctx context.Context, cmd RunSLACheckCommand) (*RunSLACheckResult, error)
}

type GetOverdueTasksExecutor interface {
	Execute(ctx context.Context, query GetOverdueTasksQuery) (*GetOverdueTasksResult, error)
}

type GetApproachingSLAExecutor interface {
	Execute(ctx context.Context, query GetApproachingSLAQuery) (*GetApproachingSLAResult, error)
}

type GetEscalationHistoryExecutor interface {
	Execute(ctx context.Context, query GetEscalationHistoryQuery) (*GetEscalationHistoryResult, error)
}

type GetUserWorkloadExecutor interface {
	Execute(ctx context.Context, query GetUserWorkloadQuery) (*GetUserWorkloadResult, error)
}

// NotificationEnqueuer hands notification intents to the outbox. Failures are
// logged by callers, never propagated into the escalation transaction.
type NotificationEnqueuer interface {
	Enqueue(ctx context.Context, orgID, userID uint, notType outboxvo.NotificationType, payload map[string]interface{}) (skipped bool, err error)
}

// AuditEvent is the escalation engine's view of an audit write.
type AuditEvent struct {
	OrgID         uint
	ActorID       uint
	ActorRole     string
	Action        auditvo.Action
	ResourceType  string
	ResourceID    string
	Before        map[string]interface{}
	After         map[string]interface{}
	CorrelationID string
}

// AuditTrail records governed actions. Implementations append to the ledger;
// escalation use cases treat failures as best-effort and log them.
type AuditTrail interface {
	Record(ctx context.Context, ev AuditEvent) error
}

// TxManager runs a function inside a database transaction carried through the
// context.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

