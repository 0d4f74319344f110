package audit

import (
	"context"

	"praxis/internal/application/audit/usecases"
)

// Service interfaces for AuditHandler - enables unit testing with mocks.

type logAuditService interface {
	LogAudit(ctx context.Context, cmd usecases.LogAuditCommand) (*usecases.LogAuditResult, error)
}

type getAuditLogService interface {
	GetAuditLog(ctx context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error)
}

type exportAuditLogService interface {
	ExportAuditLog(ctx context.Context, query usecases.ExportAuditLogQuery) (*usecases.ExportAuditLogResult, error)
}

type verifyHashChainService interface {
	VerifyHashChain(ctx context.Context, query usecases.VerifyHashChainQuery) (*usecases.VerifyHashChainResult, error)
}

// AuditService is the full surface the handler needs; the application layer
// Service satisfies it.
type AuditService interface {
	logAuditService
	getAuditLogService
	exportAuditLogService
	verifyHashChainService
}
