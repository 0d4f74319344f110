package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"praxis/internal/domain/outbox"
	"praxis/internal/infrastructure/persistence/models"
)

type UserPreferenceMapper interface {
	ToModel(p *outbox.Preference) *models.UserPreferenceModel
	ToDomain(model *models.UserPreferenceModel) (*outbox.Preference, error)
}

type UserPreferenceMapperImpl struct{}

func NewUserPreferenceMapper() UserPreferenceMapper {
	return &UserPreferenceMapperImpl{}
}

func (m *UserPreferenceMapperImpl) ToModel(p *outbox.Preference) *models.UserPreferenceModel {
	model := &models.UserPreferenceModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		OrgID:     p.OrgID(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}

	channelsJSON, _ := json.Marshal(p.Channels())
	model.Channels = datatypes.JSON(channelsJSON)
	eventsJSON, _ := json.Marshal(p.Events())
	model.Events = datatypes.JSON(eventsJSON)

	return model
}

func (m *UserPreferenceMapperImpl) ToDomain(model *models.UserPreferenceModel) (*outbox.Preference, error) {
	var channels, events map[string]bool
	if len(model.Channels) > 0 {
		if err := json.Unmarshal(model.Channels, &channels); err != nil {
			return nil, err
		}
	}
	if len(model.Events) > 0 {
		if err := json.Unmarshal(model.Events, &events); err != nil {
			return nil, err
		}
	}

	return outbox.ReconstructPreference(
		model.ID,
		model.UserID,
		model.OrgID,
		channels,
		events,
		msToTime(model.UpdatedAt),
	)
}
