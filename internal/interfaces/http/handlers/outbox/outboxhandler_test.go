package outbox

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/application/outbox/usecases"
	"praxis/internal/interfaces/http/handlers/testutil"
	sharedConfig "praxis/internal/shared/config"
)

type mockOutboxService struct {
	EnqueueNotificationFunc   func(ctx context.Context, cmd usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error)
	ProcessQueueFunc          func(ctx context.Context, cmd usecases.ProcessQueueCommand) (*usecases.ProcessQueueResult, error)
	GetOutboxStatsFunc        func(ctx context.Context, query usecases.GetOutboxStatsQuery) (*usecases.GetOutboxStatsResult, error)
	UpdateUserPreferencesFunc func(ctx context.Context, cmd usecases.UpdatePreferencesCommand) (*usecases.UpdatePreferencesResult, error)
}

func (m *mockOutboxService) EnqueueNotification(ctx context.Context, cmd usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error) {
	if m.EnqueueNotificationFunc != nil {
		return m.EnqueueNotificationFunc(ctx, cmd)
	}
	return &usecases.EnqueueNotificationResult{}, nil
}

func (m *mockOutboxService) ProcessQueue(ctx context.Context, cmd usecases.ProcessQueueCommand) (*usecases.ProcessQueueResult, error) {
	if m.ProcessQueueFunc != nil {
		return m.ProcessQueueFunc(ctx, cmd)
	}
	return &usecases.ProcessQueueResult{}, nil
}

func (m *mockOutboxService) GetOutboxStats(ctx context.Context, query usecases.GetOutboxStatsQuery) (*usecases.GetOutboxStatsResult, error) {
	if m.GetOutboxStatsFunc != nil {
		return m.GetOutboxStatsFunc(ctx, query)
	}
	return &usecases.GetOutboxStatsResult{}, nil
}

func (m *mockOutboxService) UpdateUserPreferences(ctx context.Context, cmd usecases.UpdatePreferencesCommand) (*usecases.UpdatePreferencesResult, error) {
	if m.UpdateUserPreferencesFunc != nil {
		return m.UpdateUserPreferencesFunc(ctx, cmd)
	}
	return &usecases.UpdatePreferencesResult{}, nil
}

func newTestHandler(service OutboxService) *OutboxHandler {
	return NewOutboxHandler(service, sharedConfig.OutboxConfig{
		MaxAttempts:           3,
		BatchSize:             50,
		DrainIntervalSeconds:  30,
		ClaimLeaseSeconds:     300,
		PerItemTimeoutSeconds: 10,
		StatsWindowDays:       7,
	})
}

func TestOutboxHandler_EnqueueNotification_Success(t *testing.T) {
	var captured usecases.EnqueueNotificationCommand
	service := &mockOutboxService{
		EnqueueNotificationFunc: func(_ context.Context, cmd usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error) {
			captured = cmd
			return &usecases.EnqueueNotificationResult{NotificationID: 11, Status: "QUEUED"}, nil
		},
	}
	handler := newTestHandler(service)

	reqBody := EnqueueNotificationRequest{
		UserID:  9,
		Type:    "TASK_ESCALATED",
		Payload: map[string]interface{}{"task_title": "Budget review"},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EnqueueNotification(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.Equal(t, uint(9), captured.UserID)
	assert.Equal(t, "email", captured.Channel)
}

func TestOutboxHandler_EnqueueNotification_SkippedByPreferences(t *testing.T) {
	service := &mockOutboxService{
		EnqueueNotificationFunc: func(_ context.Context, _ usecases.EnqueueNotificationCommand) (*usecases.EnqueueNotificationResult, error) {
			return &usecases.EnqueueNotificationResult{Skipped: true, SkipReason: "event muted by user"}, nil
		},
	}
	handler := newTestHandler(service)

	reqBody := EnqueueNotificationRequest{
		UserID:  9,
		Type:    "SLA_WARNING",
		Payload: map[string]interface{}{},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EnqueueNotification(c)

	// A skipped enqueue is a success, not an error; nothing was created.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOutboxHandler_EnqueueNotification_BindError(t *testing.T) {
	handler := newTestHandler(&mockOutboxService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", map[string]interface{}{"type": "TASK_ESCALATED"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EnqueueNotification(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestOutboxHandler_ProcessQueue(t *testing.T) {
	var captured usecases.ProcessQueueCommand
	service := &mockOutboxService{
		ProcessQueueFunc: func(_ context.Context, cmd usecases.ProcessQueueCommand) (*usecases.ProcessQueueResult, error) {
			captured = cmd
			return &usecases.ProcessQueueResult{Processed: 5, Sent: 4, Failed: 1}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications/process", nil)
	testutil.SetIdentityContext(c, 42, 3, "admin")

	handler.ProcessQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, captured.BatchSize)
	assert.Equal(t, 3, captured.MaxAttempts)
	assert.Equal(t, 10*time.Second, captured.PerItemTimeout)
}

func TestOutboxHandler_GetStats(t *testing.T) {
	var captured usecases.GetOutboxStatsQuery
	service := &mockOutboxService{
		GetOutboxStatsFunc: func(_ context.Context, query usecases.GetOutboxStatsQuery) (*usecases.GetOutboxStatsResult, error) {
			captured = query
			return &usecases.GetOutboxStatsResult{Queued: 2, Sent: 10}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications/stats", nil)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.Equal(t, 7*24*time.Hour, captured.Window)
}

func TestOutboxHandler_UpdatePreferences(t *testing.T) {
	var captured usecases.UpdatePreferencesCommand
	service := &mockOutboxService{
		UpdateUserPreferencesFunc: func(_ context.Context, cmd usecases.UpdatePreferencesCommand) (*usecases.UpdatePreferencesResult, error) {
			captured = cmd
			return &usecases.UpdatePreferencesResult{UserID: cmd.UserID}, nil
		},
	}
	handler := newTestHandler(service)

	reqBody := UpdatePreferencesRequest{
		Channels: map[string]bool{"email": true, "chat": false},
		Events:   map[string]bool{"event_sla_warning": false},
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/preferences", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "initiative_owner")

	handler.UpdatePreferences(c)

	assert.Equal(t, http.StatusOK, w.Code)
	// The target user comes from the identity headers, never from the body.
	assert.Equal(t, uint(42), captured.UserID)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.False(t, captured.Channels["chat"])
}
