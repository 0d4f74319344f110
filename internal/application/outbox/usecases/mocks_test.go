package usecases

import (
	"context"
	"time"

	auditvo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc               func(ctx context.Context, n *outbox.Notification) error
	UpdateFunc             func(ctx context.Context, n *outbox.Notification) error
	GetByIDFunc            func(ctx context.Context, id uint) (*outbox.Notification, error)
	FindQueuedIDsFunc      func(ctx context.Context, limit, maxAttempts int) ([]uint, error)
	ClaimForSendingFunc    func(ctx context.Context, id uint, maxAttempts int, at time.Time) (bool, error)
	ReleaseStaleClaimsFunc func(ctx context.Context, olderThan time.Time) (int64, error)
	CountByStatusSinceFunc func(ctx context.Context, orgID uint, since time.Time) (map[vo.Status]int64, error)
	OldestQueuedAgeFunc    func(ctx context.Context, orgID uint, now time.Time) (*time.Duration, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *outbox.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *outbox.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*outbox.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) FindQueuedIDs(ctx context.Context, limit, maxAttempts int) ([]uint, error) {
	if m.FindQueuedIDsFunc != nil {
		return m.FindQueuedIDsFunc(ctx, limit, maxAttempts)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ClaimForSending(ctx context.Context, id uint, maxAttempts int, at time.Time) (bool, error) {
	if m.ClaimForSendingFunc != nil {
		return m.ClaimForSendingFunc(ctx, id, maxAttempts, at)
	}
	return true, nil
}

func (m *mockNotificationRepository) ReleaseStaleClaims(ctx context.Context, olderThan time.Time) (int64, error) {
	if m.ReleaseStaleClaimsFunc != nil {
		return m.ReleaseStaleClaimsFunc(ctx, olderThan)
	}
	return 0, nil
}

func (m *mockNotificationRepository) CountByStatusSince(ctx context.Context, orgID uint, since time.Time) (map[vo.Status]int64, error) {
	if m.CountByStatusSinceFunc != nil {
		return m.CountByStatusSinceFunc(ctx, orgID, since)
	}
	return map[vo.Status]int64{}, nil
}

func (m *mockNotificationRepository) OldestQueuedAge(ctx context.Context, orgID uint, now time.Time) (*time.Duration, error) {
	if m.OldestQueuedAgeFunc != nil {
		return m.OldestQueuedAgeFunc(ctx, orgID, now)
	}
	return nil, nil
}

type mockPreferenceRepository struct {
	GetByUserFunc func(ctx context.Context, userID, orgID uint) (*outbox.Preference, error)
	UpsertFunc    func(ctx context.Context, p *outbox.Preference) error
}

func (m *mockPreferenceRepository) GetByUser(ctx context.Context, userID, orgID uint) (*outbox.Preference, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID, orgID)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) Upsert(ctx context.Context, p *outbox.Preference) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

type mockDeliveryChannel struct {
	SendFunc func(ctx context.Context, n *outbox.Notification) error
	kind     vo.Channel
}

func (m *mockDeliveryChannel) Send(ctx context.Context, n *outbox.Notification) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, n)
	}
	return nil
}

func (m *mockDeliveryChannel) Kind() vo.Channel {
	return m.kind
}

type mockPreferenceAuditor struct {
	RecordPreferenceChangeFunc func(ctx context.Context, orgID, userID uint, action auditvo.Action, before, after map[string]interface{}) error
}

func (m *mockPreferenceAuditor) RecordPreferenceChange(ctx context.Context, orgID, userID uint, action auditvo.Action, before, after map[string]interface{}) error {
	if m.RecordPreferenceChangeFunc != nil {
		return m.RecordPreferenceChangeFunc(ctx, orgID, userID, action, before, after)
	}
	return nil
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
