package escalation

import (
	"context"

	"praxis/internal/application/escalation/usecases"
	domesc "praxis/internal/domain/escalation"
	"praxis/internal/domain/workitem"
	"praxis/internal/shared/logger"
)

// Service is the escalation engine facade. Handlers and the scheduler talk to
// it; each operation delegates to its use case.
type Service struct {
	logger logger.Interface

	escalateTask    *usecases.EscalateTaskUseCase
	resolve         *usecases.ResolveEscalationUseCase
	runSLACheck     *usecases.RunSLACheckUseCase
	getOverdue      *usecases.GetOverdueTasksUseCase
	getApproaching  *usecases.GetApproachingSLAUseCase
	getHistory      *usecases.GetEscalationHistoryUseCase
	getUserWorkload *usecases.GetUserWorkloadUseCase
}

func NewService(
	workItemRepo workitem.Repository,
	recordRepo domesc.Repository,
	directory domesc.RecipientDirectory,
	enqueuer usecases.NotificationEnqueuer,
	auditTrail usecases.AuditTrail,
	txManager usecases.TxManager,
	logger logger.Interface,
) *Service {
	escalateTask := usecases.NewEscalateTaskUseCase(workItemRepo, recordRepo, directory, enqueuer, auditTrail, txManager, logger)

	return &Service{
		logger: logger,

		escalateTask:    escalateTask,
		resolve:         usecases.NewResolveEscalationUseCase(workItemRepo, recordRepo, enqueuer, auditTrail, txManager, logger),
		runSLACheck:     usecases.NewRunSLACheckUseCase(workItemRepo, escalateTask, logger),
		getOverdue:      usecases.NewGetOverdueTasksUseCase(workItemRepo, logger),
		getApproaching:  usecases.NewGetApproachingSLAUseCase(workItemRepo, logger),
		getHistory:      usecases.NewGetEscalationHistoryUseCase(workItemRepo, recordRepo, logger),
		getUserWorkload: usecases.NewGetUserWorkloadUseCase(workItemRepo, logger),
	}
}

func (s *Service) EscalateTask(ctx context.Context, cmd usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error) {
	return s.escalateTask.Execute(ctx, cmd)
}

func (s *Service) ResolveEscalation(ctx context.Context, cmd usecases.ResolveEscalationCommand) (*usecases.ResolveEscalationResult, error) {
	return s.resolve.Execute(ctx, cmd)
}

func (s *Service) RunSLACheck(ctx context.Context, cmd usecases.RunSLACheckCommand) (*usecases.RunSLACheckResult, error) {
	return s.runSLACheck.Execute(ctx, cmd)
}

func (s *Service) GetOverdueTasks(ctx context.Context, query usecases.GetOverdueTasksQuery) (*usecases.GetOverdueTasksResult, error) {
	return s.getOverdue.Execute(ctx, query)
}

func (s *Service) GetTasksApproachingSLA(ctx context.Context, query usecases.GetApproachingSLAQuery) (*usecases.GetApproachingSLAResult, error) {
	return s.getApproaching.Execute(ctx, query)
}

func (s *Service) GetTaskEscalationHistory(ctx context.Context, query usecases.GetEscalationHistoryQuery) (*usecases.GetEscalationHistoryResult, error) {
	return s.getHistory.Execute(ctx, query)
}

func (s *Service) GetUserWorkload(ctx context.Context, query usecases.GetUserWorkloadQuery) (*usecases.GetUserWorkloadResult, error) {
	return s.getUserWorkload.Execute(ctx, query)
}
