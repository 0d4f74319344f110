package audit

import (
	"context"
	"fmt"

	"praxis/internal/application/audit/usecases"
	escusecases "praxis/internal/application/escalation/usecases"
	domaudit "praxis/internal/domain/audit"
	vo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/shared/logger"
)

// Service is the audit ledger facade. Besides the ledger operations it
// implements the trail interfaces the other contexts write through.
type Service struct {
	logger logger.Interface

	logAudit    *usecases.LogAuditUseCase
	getAuditLog *usecases.GetAuditLogUseCase
	export      *usecases.ExportAuditLogUseCase
	verify      *usecases.VerifyHashChainUseCase
}

func NewService(
	auditRepo domaudit.Repository,
	redactor domaudit.Redactor,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		logAudit:    usecases.NewLogAuditUseCase(auditRepo, redactor, logger),
		getAuditLog: usecases.NewGetAuditLogUseCase(auditRepo, logger),
		export:      usecases.NewExportAuditLogUseCase(auditRepo, logger),
		verify:      usecases.NewVerifyHashChainUseCase(auditRepo, logger),
	}
}

func (s *Service) LogAudit(ctx context.Context, cmd usecases.LogAuditCommand) (*usecases.LogAuditResult, error) {
	return s.logAudit.Execute(ctx, cmd)
}

func (s *Service) GetAuditLog(ctx context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error) {
	return s.getAuditLog.Execute(ctx, query)
}

func (s *Service) ExportAuditLog(ctx context.Context, query usecases.ExportAuditLogQuery) (*usecases.ExportAuditLogResult, error) {
	return s.export.Execute(ctx, query)
}

func (s *Service) VerifyHashChain(ctx context.Context, query usecases.VerifyHashChainQuery) (*usecases.VerifyHashChainResult, error) {
	return s.verify.Execute(ctx, query)
}

// Record implements the escalation engine's audit trail.
func (s *Service) Record(ctx context.Context, ev escusecases.AuditEvent) error {
	_, err := s.logAudit.Execute(ctx, usecases.LogAuditCommand{
		OrgID:         ev.OrgID,
		ActorID:       ev.ActorID,
		ActorRole:     ev.ActorRole,
		Action:        ev.Action.String(),
		ResourceType:  ev.ResourceType,
		ResourceID:    ev.ResourceID,
		Before:        ev.Before,
		After:         ev.After,
		CorrelationID: ev.CorrelationID,
	})
	return err
}

// RecordPreferenceChange implements the outbox preference auditor.
func (s *Service) RecordPreferenceChange(ctx context.Context, orgID, userID uint, action vo.Action, before, after map[string]interface{}) error {
	_, err := s.logAudit.Execute(ctx, usecases.LogAuditCommand{
		OrgID:        orgID,
		ActorID:      userID,
		ActorRole:    "member",
		Action:       action.String(),
		ResourceType: "user_preference",
		ResourceID:   fmt.Sprintf("%d", userID),
		Before:       before,
		After:        after,
	})
	return err
}
