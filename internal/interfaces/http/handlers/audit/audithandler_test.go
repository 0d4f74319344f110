package audit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/application/audit/usecases"
	"praxis/internal/interfaces/http/handlers/testutil"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/constants"
)

type mockAuditService struct {
	LogAuditFunc        func(ctx context.Context, cmd usecases.LogAuditCommand) (*usecases.LogAuditResult, error)
	GetAuditLogFunc     func(ctx context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error)
	ExportAuditLogFunc  func(ctx context.Context, query usecases.ExportAuditLogQuery) (*usecases.ExportAuditLogResult, error)
	VerifyHashChainFunc func(ctx context.Context, query usecases.VerifyHashChainQuery) (*usecases.VerifyHashChainResult, error)
}

func (m *mockAuditService) LogAudit(ctx context.Context, cmd usecases.LogAuditCommand) (*usecases.LogAuditResult, error) {
	if m.LogAuditFunc != nil {
		return m.LogAuditFunc(ctx, cmd)
	}
	return &usecases.LogAuditResult{}, nil
}

func (m *mockAuditService) GetAuditLog(ctx context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error) {
	if m.GetAuditLogFunc != nil {
		return m.GetAuditLogFunc(ctx, query)
	}
	return &usecases.GetAuditLogResult{Page: query.Page, PageSize: query.PageSize}, nil
}

func (m *mockAuditService) ExportAuditLog(ctx context.Context, query usecases.ExportAuditLogQuery) (*usecases.ExportAuditLogResult, error) {
	if m.ExportAuditLogFunc != nil {
		return m.ExportAuditLogFunc(ctx, query)
	}
	return &usecases.ExportAuditLogResult{}, nil
}

func (m *mockAuditService) VerifyHashChain(ctx context.Context, query usecases.VerifyHashChainQuery) (*usecases.VerifyHashChainResult, error) {
	if m.VerifyHashChainFunc != nil {
		return m.VerifyHashChainFunc(ctx, query)
	}
	return &usecases.VerifyHashChainResult{Valid: true}, nil
}

func newTestHandler(service AuditService) *AuditHandler {
	return NewAuditHandler(service, sharedConfig.AuditConfig{
		ExportMaxRows:       10000,
		AppendRetryAttempts: 5,
	})
}

func TestAuditHandler_LogAudit_Success(t *testing.T) {
	var captured usecases.LogAuditCommand
	service := &mockAuditService{
		LogAuditFunc: func(_ context.Context, cmd usecases.LogAuditCommand) (*usecases.LogAuditResult, error) {
			captured = cmd
			return &usecases.LogAuditResult{EntryID: "e-1", Seq: 1}, nil
		},
	}
	handler := newTestHandler(service)

	reqBody := LogAuditRequest{
		Action:       "ASSIGN_WORK_ITEM",
		ResourceType: "work_item",
		ResourceID:   "7",
		After:        map[string]interface{}{"assignee_id": 9},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/audit", reqBody)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.LogAudit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.Equal(t, uint(42), captured.ActorID)
	assert.Equal(t, "pmo_lead", captured.ActorRole)
}

func TestAuditHandler_LogAudit_BindError(t *testing.T) {
	handler := newTestHandler(&mockAuditService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/audit", map[string]interface{}{"action": "ESCALATE_TASK"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.LogAudit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHandler_GetAuditLog_Filters(t *testing.T) {
	var captured usecases.GetAuditLogQuery
	service := &mockAuditService{
		GetAuditLogFunc: func(_ context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error) {
			captured = query
			return &usecases.GetAuditLogResult{Page: query.Page, PageSize: query.PageSize}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/audit", nil)
	testutil.SetQueryParams(c, map[string]string{
		"action":   "ESCALATE_TASK",
		"actor_id": "42",
		"from":     "2026-08-01T00:00:00Z",
		"page":     "2",
	})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetAuditLog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
	assert.Equal(t, "ESCALATE_TASK", captured.Action)
	assert.Equal(t, uint(42), captured.ActorID)
	require.NotNil(t, captured.From)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), captured.From.UTC())
	assert.Equal(t, 2, captured.Page)
}

func TestAuditHandler_GetAuditLog_CrossTenantRequiresAdmin(t *testing.T) {
	var captured usecases.GetAuditLogQuery
	service := &mockAuditService{
		GetAuditLogFunc: func(_ context.Context, query usecases.GetAuditLogQuery) (*usecases.GetAuditLogResult, error) {
			captured = query
			return &usecases.GetAuditLogResult{Page: query.Page, PageSize: query.PageSize}, nil
		},
	}
	handler := newTestHandler(service)

	c, _ := testutil.NewTestContext(http.MethodGet, "/audit", nil)
	testutil.SetQueryParams(c, map[string]string{"cross_tenant": "true"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")
	handler.GetAuditLog(c)
	assert.False(t, captured.CrossTenant)

	c, _ = testutil.NewTestContext(http.MethodGet, "/audit", nil)
	testutil.SetQueryParams(c, map[string]string{"cross_tenant": "true"})
	testutil.SetIdentityContext(c, 42, 3, constants.RoleAdmin)
	handler.GetAuditLog(c)
	assert.True(t, captured.CrossTenant)
}

func TestAuditHandler_GetAuditLog_InvalidTimestamp(t *testing.T) {
	handler := newTestHandler(&mockAuditService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/audit", nil)
	testutil.SetQueryParams(c, map[string]string{"from": "yesterday"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.GetAuditLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHandler_ExportAuditLog_CSV(t *testing.T) {
	service := &mockAuditService{
		ExportAuditLogFunc: func(_ context.Context, query usecases.ExportAuditLogQuery) (*usecases.ExportAuditLogResult, error) {
			return &usecases.ExportAuditLogResult{
				Format: "csv",
				CSV:    "id,seq,action\ne-1,1,ESCALATE_TASK\n",
				Total:  1,
			}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/audit/export", nil)
	testutil.SetQueryParams(c, map[string]string{"format": "csv"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.ExportAuditLog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get(constants.HeaderContentType), constants.ContentTypeCSV)
	assert.Contains(t, w.Body.String(), "ESCALATE_TASK")
}

func TestAuditHandler_ExportAuditLog_InvalidFormat(t *testing.T) {
	handler := newTestHandler(&mockAuditService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/audit/export", nil)
	testutil.SetQueryParams(c, map[string]string{"format": "xml"})
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.ExportAuditLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHandler_VerifyHashChain(t *testing.T) {
	var captured usecases.VerifyHashChainQuery
	service := &mockAuditService{
		VerifyHashChainFunc: func(_ context.Context, query usecases.VerifyHashChainQuery) (*usecases.VerifyHashChainResult, error) {
			captured = query
			return &usecases.VerifyHashChainResult{Valid: true, TotalRecords: 12}, nil
		},
	}
	handler := newTestHandler(service)

	c, w := testutil.NewTestContext(http.MethodGet, "/audit/verify", nil)
	testutil.SetIdentityContext(c, 42, 3, "pmo_lead")

	handler.VerifyHashChain(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), captured.OrgID)
}
