package escalation

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/application/escalation/usecases"
	"praxis/internal/interfaces/http/handlers/testutil"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/errors"
)

type mockEscalationService struct {
	EscalateTaskFunc             func(ctx context.Context, cmd usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error)
	ResolveEscalationFunc        func(ctx context.Context, cmd usecases.ResolveEscalationCommand) (*usecases.ResolveEscalationResult, error)
	RunSLACheckFunc              func(ctx context.Context, cmd usecases.RunSLACheckCommand) (*usecases.RunSLACheckResult, error)
	GetOverdueTasksFunc          func(ctx context.Context, query usecases.GetOverdueTasksQuery) (*usecases.GetOverdueTasksResult, error)
	GetTasksApproachingSLAFunc   func(ctx context.Context, query usecases.GetApproachingSLAQuery) (*usecases.GetApproachingSLAResult, error)
	GetTaskEscalationHistoryFunc func(ctx context.Context, query usecases.GetEscalationHistoryQuery) (*usecases.GetEscalationHistoryResult, error)
	GetUserWorkloadFunc          func(ctx context.Context, query usecases.GetUserWorkloadQuery) (*usecases.GetUserWorkloadResult, error)
}

func (m *mockEscalationService) EscalateTask(ctx context.Context, cmd usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error) {
	if m.EscalateTaskFunc != nil {
		return m.EscalateTaskFunc(ctx, cmd)
	}
	return &usecases.EscalateTaskResult{}, nil
}

func (m *mockEscalationService) ResolveEscalation(ctx context.Context, cmd usecases.ResolveEscalationCommand) (*usecases.ResolveEscalationResult, error) {
	if m.ResolveEscalationFunc != nil {
		return m.ResolveEscalationFunc(ctx, cmd)
	}
	return &usecases.ResolveEscalationResult{}, nil
}

func (m *mockEscalationService) RunSLACheck(ctx context.Context, cmd usecases.RunSLACheckCommand) (*usecases.RunSLACheckResult, error) {
	if m.RunSLACheckFunc != nil {
		return m.RunSLACheckFunc(ctx, cmd)
	}
	return &usecases.RunSLACheckResult{}, nil
}

func (m *mockEscalationService) GetOverdueTasks(ctx context.Context, query usecases.GetOverdueTasksQuery) (*usecases.GetOverdueTasksResult, error) {
	if m.GetOverdueTasksFunc != nil {
		return m.GetOverdueTasksFunc(ctx, query)
	}
	return &usecases.GetOverdueTasksResult{}, nil
}

func (m *mockEscalationService) GetTasksApproachingSLA(ctx context.Context, query usecases.GetApproachingSLAQuery) (*usecases.GetApproachingSLAResult, error) {
	if m.GetTasksApproachingSLAFunc != nil {
		return m.GetTasksApproachingSLAFunc(ctx, query)
	}
	return &usecases.GetApproachingSLAResult{}, nil
}

func (m *mockEscalationService) GetTaskEscalationHistory(ctx context.Context, query usecases.GetEscalationHistoryQuery) (*usecases.GetEscalationHistoryResult, error) {
	if m.GetTaskEscalationHistoryFunc != nil {
		return m.GetTaskEscalationHistoryFunc(ctx, query)
	}
	return &usecases.GetEscalationHistoryResult{}, nil
}

func (m *mockEscalationService) GetUserWorkload(ctx context.Context, query usecases.GetUserWorkloadQuery) (*usecases.GetUserWorkloadResult, error) {
	if m.GetUserWorkloadFunc != nil {
		return m.GetUserWorkloadFunc(ctx, query)
	}
	return &usecases.GetUserWorkloadResult{}, nil
}

func newTestHandler(service EscalationService) *EscalationHandler {
	return NewEscalationHandler(service, sharedConfig.EscalationConfig{
		MaxLevel:            3,
		CooldownHours:       4,
		SLAWarningHours:     8,
		ScanIntervalMinutes: 15,
	})
}

func TestEscalationHandler_EscalateTask_Success(t *testing.T) {
	var captured usecases.EscalateTaskCommand
	service := &mockEscalationService{
		EscalateTaskFunc: func(_ context.Context, cmd usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error) {
			captured = cmd
			return &usecases.EscalateTaskResult{WorkItemID: cmd.WorkItemID, ToLevel: 1}, nil
		},
	}
	handler := newTestHandler(service)

	reqBody := EscalateTaskRequest{WorkItemID: 7, Reason: "blocked for two days"}
	c, w := testutil.NewTestContext(http.MethodPost, "/escalations", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EscalateTask(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), captured.WorkItemID)
	assert.Equal(t, uint(3), captured.OrgID)
	require.NotNil(t, captured.ActorID)
	assert.Equal(t, uint(42), *captured.ActorID)
	assert.Equal(t, "pmo_lead", captured.ActorRole)
	assert.Equal(t, "MANUAL", captured.Trigger)
}

func TestEscalationHandler_EscalateTask_BindError(t *testing.T) {
	handler := newTestHandler(&mockEscalationService{})

	// Missing required reason
	c, w := testutil.NewTestContext(http.MethodPost, "/escalations", map[string]interface{}{"work_item_id": 7})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EscalateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestEscalationHandler_EscalateTask_ServiceError(t *testing.T) {
	service := &mockEscalationService{
		EscalateTaskFunc: func(_ context.Context, _ usecases.EscalateTaskCommand) (*usecases.EscalateTaskResult, error) {
			return nil, errors.NewMaxEscalationReachedError("work item is already at the maximum escalation level")
		},
	}
	handler := newTestHandler(service)

	reqBody := EscalateTaskRequest{WorkItemID: 7, Reason: "still stuck"}
	c, w := testutil.NewTestContext(http.MethodPost, "/escalations", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.EscalateTask(c)

	assert.NotEqual(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestEscalationHandler_ResolveEscalation_EmptyBody(t *testing.T) {
	var captured usecases.ResolveEscalationCommand
	service := &mockEscalationService{
		ResolveEscalationFunc: func(_ context.Context, cmd usecases.ResolveEscalationCommand) (*usecases.ResolveEscalationResult, error) {
			captured = cmd
			return &usecases.ResolveEscalationResult{RecordID: cmd.RecordID, LevelReset: true}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodPost, "/escalations/5/resolve", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.ResolveEscalation(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), captured.RecordID)
	assert.Empty(t, captured.Note)
}

func TestEscalationHandler_ResolveEscalation_InvalidID(t *testing.T) {
	handler := newTestHandler(&mockEscalationService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/escalations/abc/resolve", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.ResolveEscalation(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEscalationHandler_RunSLACheck(t *testing.T) {
	var captured usecases.RunSLACheckCommand
	service := &mockEscalationService{
		RunSLACheckFunc: func(_ context.Context, cmd usecases.RunSLACheckCommand) (*usecases.RunSLACheckResult, error) {
			captured = cmd
			return &usecases.RunSLACheckResult{Checked: 3, Escalated: 1}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodPost, "/escalations/sla-check", nil)
	testutil.SetIdentityContext(c, 42, 3, "admin")

	handler.RunSLACheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.Equal(t, 4*time.Hour, captured.Cooldown)
}

func TestEscalationHandler_GetTasksApproachingSLA_WindowOverride(t *testing.T) {
	var captured usecases.GetApproachingSLAQuery
	service := &mockEscalationService{
		GetTasksApproachingSLAFunc: func(_ context.Context, query usecases.GetApproachingSLAQuery) (*usecases.GetApproachingSLAResult, error) {
			captured = query
			return &usecases.GetApproachingSLAResult{}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/approaching-sla", nil)
	testutil.SetQueryParams(c, map[string]string{"window_hours": "24"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetTasksApproachingSLA(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 24*time.Hour, captured.Window)
}

func TestEscalationHandler_GetTasksApproachingSLA_InvalidWindow(t *testing.T) {
	handler := newTestHandler(&mockEscalationService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/approaching-sla", nil)
	testutil.SetQueryParams(c, map[string]string{"window_hours": "zero"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetTasksApproachingSLA(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEscalationHandler_GetUserWorkload(t *testing.T) {
	var captured usecases.GetUserWorkloadQuery
	service := &mockEscalationService{
		GetUserWorkloadFunc: func(_ context.Context, query usecases.GetUserWorkloadQuery) (*usecases.GetUserWorkloadResult, error) {
			captured = query
			return &usecases.GetUserWorkloadResult{}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/9/workload", nil)
	testutil.SetURLParam(c, "id", "9")
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetUserWorkload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), captured.UserID)
	assert.Equal(t, uint(3), captured.OrgID)
}
