package usecases

import (
	"context"

	"praxis/internal/domain/audit"
	"praxis/internal/shared/logger"
)

type mockAuditRepository struct {
	AppendFunc       func(ctx context.Context, e *audit.Entry) error
	GetTailFunc      func(ctx context.Context, orgID uint) (*audit.Entry, error)
	ListFunc         func(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error)
	ListAllByOrgFunc func(ctx context.Context, orgID uint, limit int) ([]*audit.Entry, error)
}

func (m *mockAuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditRepository) GetTail(ctx context.Context, orgID uint) (*audit.Entry, error) {
	if m.GetTailFunc != nil {
		return m.GetTailFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAuditRepository) ListAllByOrg(ctx context.Context, orgID uint, limit int) ([]*audit.Entry, error) {
	if m.ListAllByOrgFunc != nil {
		return m.ListAllByOrgFunc(ctx, orgID, limit)
	}
	return nil, nil
}

type mockRedactor struct {
	RedactFunc func(snapshot map[string]interface{}) map[string]interface{}
}

func (m *mockRedactor) Redact(snapshot map[string]interface{}) map[string]interface{} {
	if m.RedactFunc != nil {
		return m.RedactFunc(snapshot)
	}
	return snapshot
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
