package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"praxis/internal/domain/audit"
	vo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
)

type AuditEntryMapper interface {
	ToModel(e *audit.Entry) *models.AuditEntryModel
	ToDomain(model *models.AuditEntryModel) (*audit.Entry, error)
}

type AuditEntryMapperImpl struct{}

func NewAuditEntryMapper() AuditEntryMapper {
	return &AuditEntryMapperImpl{}
}

func (m *AuditEntryMapperImpl) ToModel(e *audit.Entry) *models.AuditEntryModel {
	model := &models.AuditEntryModel{
		ID:            e.ID(),
		OrgID:         e.OrgID(),
		ActorID:       e.ActorID(),
		ActorRole:     e.ActorRole(),
		Action:        e.Action().String(),
		ResourceType:  e.ResourceType(),
		ResourceID:    e.ResourceID(),
		CorrelationID: e.CorrelationID(),
		Seq:           e.Seq(),
		PrevHash:      e.PrevHash(),
		RecordHash:    e.RecordHash(),
		CreatedAt:     e.CreatedAt().UnixMilli(),
	}

	if before := e.Before(); len(before) > 0 {
		beforeJSON, _ := json.Marshal(before)
		model.Before = datatypes.JSON(beforeJSON)
	}
	if after := e.After(); len(after) > 0 {
		afterJSON, _ := json.Marshal(after)
		model.After = datatypes.JSON(afterJSON)
	}

	return model
}

func (m *AuditEntryMapperImpl) ToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	action, err := vo.NewAction(model.Action)
	if err != nil {
		return nil, err
	}

	var before, after map[string]interface{}
	if len(model.Before) > 0 {
		if err := json.Unmarshal(model.Before, &before); err != nil {
			return nil, err
		}
	}
	if len(model.After) > 0 {
		if err := json.Unmarshal(model.After, &after); err != nil {
			return nil, err
		}
	}

	return audit.ReconstructEntry(
		model.ID,
		model.OrgID,
		model.ActorID,
		model.ActorRole,
		action,
		model.ResourceType,
		model.ResourceID,
		before,
		after,
		model.CorrelationID,
		model.Seq,
		model.PrevHash,
		model.RecordHash,
		msToTime(model.CreatedAt),
	)
}
