package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/domain/escalation"
	"praxis/internal/domain/workitem"
	wivo "praxis/internal/domain/workitem/valueobjects"
	apperrors "praxis/internal/shared/errors"
)

func TestGetEscalationHistoryUseCase_Execute(t *testing.T) {
	item := itemAtLevel(t, wivo.LevelInitiativeOwner, nil)
	record := unresolvedRecord(t)

	workItemRepo := &mockWorkItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workitem.WorkItem, error) {
			return item, nil
		},
	}
	recordRepo := &mockRecordRepository{
		FindByWorkItemFunc: func(ctx context.Context, workItemID uint) ([]*escalation.Record, error) {
			return []*escalation.Record{record}, nil
		},
	}

	uc := NewGetEscalationHistoryUseCase(workItemRepo, recordRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetEscalationHistoryQuery{WorkItemID: 7, OrgID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Records, 1)
	assert.Equal(t, uint(55), result.Records[0].ID)
	assert.Equal(t, "SLA_BREACH", result.Records[0].Trigger)
}

func TestGetEscalationHistoryUseCase_Execute_CrossTenant(t *testing.T) {
	item := itemAtLevel(t, wivo.LevelNone, nil)
	workItemRepo := &mockWorkItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workitem.WorkItem, error) {
			return item, nil
		},
	}

	uc := NewGetEscalationHistoryUseCase(workItemRepo, &mockRecordRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetEscalationHistoryQuery{WorkItemID: 7, OrgID: 99})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetUserWorkloadUseCase_Execute(t *testing.T) {
	workItemRepo := &mockWorkItemRepository{
		CountByAssigneeFunc: func(ctx context.Context, orgID, assigneeID uint, now time.Time) (*workitem.WorkloadCounts, error) {
			return &workitem.WorkloadCounts{
				Total:      5,
				ByStatus:   map[string]int64{"IN_PROGRESS": 3, "TODO": 2},
				ByPriority: map[string]int64{"high": 4, "low": 1},
				Overdue:    2,
				Escalated:  1,
			}, nil
		},
	}

	uc := NewGetUserWorkloadUseCase(workItemRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetUserWorkloadQuery{OrgID: 1, UserID: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Workload.Total)
	assert.Equal(t, int64(2), result.Workload.Overdue)
	assert.Equal(t, int64(3), result.Workload.ByStatus["IN_PROGRESS"])
	assert.Equal(t, uint(20), result.Workload.UserID)
}
