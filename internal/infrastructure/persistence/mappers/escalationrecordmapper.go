package mappers

import (
	"praxis/internal/domain/escalation"
	vo "praxis/internal/domain/escalation/valueobjects"
	wivo "praxis/internal/domain/workitem/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
)

type EscalationRecordMapper interface {
	ToModel(r *escalation.Record) *models.EscalationRecordModel
	ToDomain(model *models.EscalationRecordModel) (*escalation.Record, error)
}

type EscalationRecordMapperImpl struct{}

func NewEscalationRecordMapper() EscalationRecordMapper {
	return &EscalationRecordMapperImpl{}
}

func (m *EscalationRecordMapperImpl) ToModel(r *escalation.Record) *models.EscalationRecordModel {
	return &models.EscalationRecordModel{
		ID:          r.ID(),
		OrgID:       r.OrgID(),
		WorkItemID:  r.WorkItemID(),
		FromLevel:   int(r.FromLevel()),
		ToLevel:     int(r.ToLevel()),
		RecipientID: r.RecipientID(),
		Reason:      r.Reason(),
		Trigger:     r.Trigger().String(),
		ActorID:     r.ActorID(),
		ResolvedAt:  timeToMsPtr(r.ResolvedAt()),
		Resolution:  r.Resolution(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

func (m *EscalationRecordMapperImpl) ToDomain(model *models.EscalationRecordModel) (*escalation.Record, error) {
	trigger, err := vo.NewTrigger(model.Trigger)
	if err != nil {
		return nil, err
	}
	fromLevel, err := wivo.NewEscalationLevel(model.FromLevel)
	if err != nil {
		return nil, err
	}
	toLevel, err := wivo.NewEscalationLevel(model.ToLevel)
	if err != nil {
		return nil, err
	}

	return escalation.ReconstructRecord(
		model.ID,
		model.OrgID,
		model.WorkItemID,
		fromLevel,
		toLevel,
		model.RecipientID,
		model.Reason,
		trigger,
		model.ActorID,
		msToTimePtr(model.ResolvedAt),
		model.Resolution,
		msToTime(model.CreatedAt),
	)
}
