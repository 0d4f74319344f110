package mappers

import (
	"praxis/internal/domain/workitem"
	vo "praxis/internal/domain/workitem/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
)

// WorkItemMapper handles the conversion between WorkItem domain entities and
// persistence models.
type WorkItemMapper interface {
	ToModel(w *workitem.WorkItem) *models.WorkItemModel
	ToDomain(model *models.WorkItemModel) (*workitem.WorkItem, error)
}

type WorkItemMapperImpl struct{}

func NewWorkItemMapper() WorkItemMapper {
	return &WorkItemMapperImpl{}
}

func (m *WorkItemMapperImpl) ToModel(w *workitem.WorkItem) *models.WorkItemModel {
	return &models.WorkItemModel{
		ID:              w.ID(),
		OrgID:           w.OrgID(),
		ProjectID:       w.ProjectID(),
		Title:           w.Title(),
		AssigneeID:      w.AssigneeID(),
		Priority:        w.Priority().String(),
		Status:          w.Status().String(),
		SLADueAt:        timeToMsPtr(w.SLADueAt()),
		EscalationLevel: int(w.EscalationLevel()),
		EscalatedToID:   w.EscalatedToID(),
		LastEscalatedAt: timeToMsPtr(w.LastEscalatedAt()),
		Version:         w.Version(),
		CreatedAt:       w.CreatedAt().UnixMilli(),
		UpdatedAt:       w.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkItemMapperImpl) ToDomain(model *models.WorkItemModel) (*workitem.WorkItem, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	level, err := vo.NewEscalationLevel(model.EscalationLevel)
	if err != nil {
		return nil, err
	}

	return workitem.ReconstructWorkItem(
		model.ID,
		model.OrgID,
		model.ProjectID,
		model.Title,
		model.AssigneeID,
		priority,
		status,
		msToTimePtr(model.SLADueAt),
		level,
		model.EscalatedToID,
		msToTimePtr(model.LastEscalatedAt),
		model.Version,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
}
