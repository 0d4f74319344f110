package usecases

import (
	"context"
	"time"

	"praxis/internal/domain/escalation"
	outboxvo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/domain/workitem"
	wivo "praxis/internal/domain/workitem/valueobjects"
	"praxis/internal/shared/logger"
)

type mockWorkItemRepository struct {
	SaveFunc               func(ctx context.Context, item *workitem.WorkItem) error
	UpdateFunc             func(ctx context.Context, item *workitem.WorkItem) error
	GetByIDFunc            func(ctx context.Context, id uint) (*workitem.WorkItem, error)
	ListFunc               func(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error)
	FindOverdueFunc        func(ctx context.Context, orgID uint, now time.Time, cooldown time.Duration) ([]*workitem.WorkItem, error)
	FindApproachingSLAFunc func(ctx context.Context, orgID uint, now time.Time, window time.Duration) ([]*workitem.WorkItem, error)
	CountByAssigneeFunc    func(ctx context.Context, orgID, assigneeID uint, now time.Time) (*workitem.WorkloadCounts, error)
	ListActiveOrgIDsFunc   func(ctx context.Context) ([]uint, error)
}

func (m *mockWorkItemRepository) Save(ctx context.Context, item *workitem.WorkItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockWorkItemRepository) Update(ctx context.Context, item *workitem.WorkItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockWorkItemRepository) GetByID(ctx context.Context, id uint) (*workitem.WorkItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkItemRepository) List(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockWorkItemRepository) FindOverdue(ctx context.Context, orgID uint, now time.Time, cooldown time.Duration) ([]*workitem.WorkItem, error) {
	if m.FindOverdueFunc != nil {
		return m.FindOverdueFunc(ctx, orgID, now, cooldown)
	}
	return nil, nil
}

func (m *mockWorkItemRepository) FindApproachingSLA(ctx context.Context, orgID uint, now time.Time, window time.Duration) ([]*workitem.WorkItem, error) {
	if m.FindApproachingSLAFunc != nil {
		return m.FindApproachingSLAFunc(ctx, orgID, now, window)
	}
	return nil, nil
}

func (m *mockWorkItemRepository) CountByAssignee(ctx context.Context, orgID, assigneeID uint, now time.Time) (*workitem.WorkloadCounts, error) {
	if m.CountByAssigneeFunc != nil {
		return m.CountByAssigneeFunc(ctx, orgID, assigneeID, now)
	}
	return nil, nil
}

func (m *mockWorkItemRepository) ListActiveOrgIDs(ctx context.Context) ([]uint, error) {
	if m.ListActiveOrgIDsFunc != nil {
		return m.ListActiveOrgIDsFunc(ctx)
	}
	return nil, nil
}

type mockRecordRepository struct {
	SaveFunc                      func(ctx context.Context, record *escalation.Record) error
	UpdateFunc                    func(ctx context.Context, record *escalation.Record) error
	GetByIDFunc                   func(ctx context.Context, id uint) (*escalation.Record, error)
	FindByWorkItemFunc            func(ctx context.Context, workItemID uint) ([]*escalation.Record, error)
	CountUnresolvedByWorkItemFunc func(ctx context.Context, workItemID uint) (int64, error)
}

func (m *mockRecordRepository) Save(ctx context.Context, record *escalation.Record) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockRecordRepository) Update(ctx context.Context, record *escalation.Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id uint) (*escalation.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecordRepository) FindByWorkItem(ctx context.Context, workItemID uint) ([]*escalation.Record, error) {
	if m.FindByWorkItemFunc != nil {
		return m.FindByWorkItemFunc(ctx, workItemID)
	}
	return nil, nil
}

func (m *mockRecordRepository) CountUnresolvedByWorkItem(ctx context.Context, workItemID uint) (int64, error) {
	if m.CountUnresolvedByWorkItemFunc != nil {
		return m.CountUnresolvedByWorkItemFunc(ctx, workItemID)
	}
	return 0, nil
}

type mockRecipientDirectory struct {
	GetEscalationRecipientsFunc func(ctx context.Context, projectID uint, level wivo.EscalationLevel) ([]escalation.Recipient, error)
}

func (m *mockRecipientDirectory) GetEscalationRecipients(ctx context.Context, projectID uint, level wivo.EscalationLevel) ([]escalation.Recipient, error) {
	if m.GetEscalationRecipientsFunc != nil {
		return m.GetEscalationRecipientsFunc(ctx, projectID, level)
	}
	return nil, nil
}

type mockEnqueuer struct {
	EnqueueFunc func(ctx context.Context, orgID, userID uint, notType outboxvo.NotificationType, payload map[string]interface{}) (bool, error)
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, orgID, userID uint, notType outboxvo.NotificationType, payload map[string]interface{}) (bool, error) {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, orgID, userID, notType, payload)
	}
	return false, nil
}

type mockAuditTrail struct {
	RecordFunc func(ctx context.Context, ev AuditEvent) error
}

func (m *mockAuditTrail) Record(ctx context.Context, ev AuditEvent) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, ev)
	}
	return nil
}

// mockTxManager runs the callback inline; tests observe ordering through the
// repository mocks.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
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
