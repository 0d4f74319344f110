package usecases

import "context"

type LogAuditExecutor interface {
	Execute(ctx context.Context, cmd LogAuditCommand) (*LogAuditResult, error)
}

type GetAuditLogExecutor interface {
	Execute(ctx context.Context, query GetAuditLogQuery) (*GetAuditLogResult, error)
}

type ExportAuditLogExecutor interface {
	Execute(ctx context.Context, query ExportAuditLogQuery) (*ExportAuditLogResult, error)
}

type VerifyHashChainExecutor interface {
	Execute(ctx context.Context, query VerifyHashChainQuery) (*VerifyHashChainResult, error)
}
