package workitem

import (
	"context"
	"time"

	vo "praxis/internal/domain/workitem/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, item *WorkItem) error
	Update(ctx context.Context, item *WorkItem) error
	GetByID(ctx context.Context, id uint) (*WorkItem, error)
	List(ctx context.Context, filter Filter) ([]*WorkItem, int64, error)

	// FindOverdue returns non-terminal work items whose SLA due time passed
	// before now and which were not escalated within the cooldown window.
	FindOverdue(ctx context.Context, orgID uint, now time.Time, cooldown time.Duration) ([]*WorkItem, error)

	// FindApproachingSLA returns non-terminal work items whose SLA due time
	// falls between now and now+window.
	FindApproachingSLA(ctx context.Context, orgID uint, now time.Time, window time.Duration) ([]*WorkItem, error)

	// CountByAssignee aggregates a user's open work by status and priority.
	CountByAssignee(ctx context.Context, orgID, assigneeID uint, now time.Time) (*WorkloadCounts, error)

	// ListActiveOrgIDs returns the organizations that currently have
	// non-terminal work items. The SLA scanner walks this set.
	ListActiveOrgIDs(ctx context.Context) ([]uint, error)
}

type Filter struct {
	OrgID      uint
	ProjectID  *uint
	AssigneeID *uint
	Status     *vo.Status
	Priority   *vo.Priority
	Overdue    *bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// WorkloadCounts summarizes one assignee's open items.
type WorkloadCounts struct {
	Total      int64
	ByStatus   map[string]int64
	ByPriority map[string]int64
	Overdue    int64
	Escalated  int64
}
