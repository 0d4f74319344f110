package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"praxis/internal/domain/workitem"
	vo "praxis/internal/domain/workitem/valueobjects"
	"praxis/internal/infrastructure/persistence/mappers"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
	"praxis/internal/shared/errors"
)

// allowedWorkItemOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedWorkItemOrderByFields = map[string]bool{
	"id":               true,
	"title":            true,
	"priority":         true,
	"status":           true,
	"sla_due_at":       true,
	"escalation_level": true,
	"created_at":       true,
	"updated_at":       true,
}

var terminalStatuses = []string{
	vo.StatusDone.String(),
	vo.StatusCancelled.String(),
}

type WorkItemRepository struct {
	db     *gorm.DB
	mapper mappers.WorkItemMapper
}

func NewWorkItemRepository(db *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{
		db:     db,
		mapper: mappers.NewWorkItemMapper(),
	}
}

func (r *WorkItemRepository) Save(ctx context.Context, item *workitem.WorkItem) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work item: %w", err)
	}

	return item.SetID(model.ID)
}

// Update writes all columns so cleared escalation fields (recipient,
// timestamp) reach the database as NULL. The version guard in the WHERE
// clause serializes level changes per work item: a domain mutation bumps the
// version by one, so a writer holding a stale copy affects zero rows and the
// surrounding transaction rolls back instead of silently losing the update.
func (r *WorkItemRepository) Update(ctx context.Context, item *workitem.WorkItem) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkItemModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update work item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("work item was modified concurrently")
	}
	return nil
}

func (r *WorkItemRepository) GetByID(ctx context.Context, id uint) (*workitem.WorkItem, error) {
	var model models.WorkItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("work item not found")
		}
		return nil, fmt.Errorf("failed to find work item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkItemRepository) List(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.WorkItemModel{}).Where("org_id = ?", filter.OrgID)

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Overdue != nil && *filter.Overdue {
		query = query.
			Where("sla_due_at IS NOT NULL AND sla_due_at < ?", time.Now().UnixMilli()).
			Where("status NOT IN ?", terminalStatuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count work items: %w", err)
	}

	query = query.Order(buildWorkItemOrderBy(filter.SortBy, filter.SortOrder))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	query = query.Offset((page - 1) * pageSize).Limit(pageSize)

	var rows []models.WorkItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list work items: %w", err)
	}

	items := make([]*workitem.WorkItem, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (r *WorkItemRepository) FindOverdue(ctx context.Context, orgID uint, now time.Time, cooldown time.Duration) ([]*workitem.WorkItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	cutoff := now.Add(-cooldown).UnixMilli()

	var rows []models.WorkItemModel
	err := tx.
		Where("org_id = ?", orgID).
		Where("sla_due_at IS NOT NULL AND sla_due_at < ?", now.UnixMilli()).
		Where("status NOT IN ?", terminalStatuses).
		Where("escalation_level < ?", int(vo.MaxEscalationLevel)).
		Where("last_escalated_at IS NULL OR last_escalated_at < ?", cutoff).
		Order("sla_due_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue work items: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *WorkItemRepository) FindApproachingSLA(ctx context.Context, orgID uint, now time.Time, window time.Duration) ([]*workitem.WorkItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.WorkItemModel
	err := tx.
		Where("org_id = ?", orgID).
		Where("sla_due_at IS NOT NULL").
		Where("sla_due_at >= ? AND sla_due_at <= ?", now.UnixMilli(), now.Add(window).UnixMilli()).
		Where("status NOT IN ?", terminalStatuses).
		Order("sla_due_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find approaching-sla work items: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *WorkItemRepository) CountByAssignee(ctx context.Context, orgID, assigneeID uint, now time.Time) (*workitem.WorkloadCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	base := func() *gorm.DB {
		return tx.Model(&models.WorkItemModel{}).
			Where("org_id = ? AND assignee_id = ?", orgID, assigneeID).
			Where("status NOT IN ?", terminalStatuses)
	}

	counts := &workitem.WorkloadCounts{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count workload: %w", err)
	}

	type bucket struct {
		Name  string
		Count int64
	}
	var statusBuckets []bucket
	if err := base().Select("status AS name, COUNT(*) AS count").Group("status").Scan(&statusBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to group workload by status: %w", err)
	}
	for _, b := range statusBuckets {
		counts.ByStatus[b.Name] = b.Count
	}

	var priorityBuckets []bucket
	if err := base().Select("priority AS name, COUNT(*) AS count").Group("priority").Scan(&priorityBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to group workload by priority: %w", err)
	}
	for _, b := range priorityBuckets {
		counts.ByPriority[b.Name] = b.Count
	}

	if err := base().
		Where("sla_due_at IS NOT NULL AND sla_due_at < ?", now.UnixMilli()).
		Count(&counts.Overdue).Error; err != nil {
		return nil, fmt.Errorf("failed to count overdue workload: %w", err)
	}

	if err := base().
		Where("escalation_level > 0").
		Count(&counts.Escalated).Error; err != nil {
		return nil, fmt.Errorf("failed to count escalated workload: %w", err)
	}

	return counts, nil
}

func (r *WorkItemRepository) ListActiveOrgIDs(ctx context.Context) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	err := tx.
		Model(&models.WorkItemModel{}).
		Where("status NOT IN ?", terminalStatuses).
		Distinct().
		Order("org_id ASC").
		Pluck("org_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active org ids: %w", err)
	}
	return ids, nil
}

func (r *WorkItemRepository) toDomainSlice(rows []models.WorkItemModel) ([]*workitem.WorkItem, error) {
	items := make([]*workitem.WorkItem, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildWorkItemOrderBy(sortBy, sortOrder string) string {
	field := "created_at"
	if allowedWorkItemOrderByFields[sortBy] {
		field = sortBy
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf("%s %s", field, order)
}
