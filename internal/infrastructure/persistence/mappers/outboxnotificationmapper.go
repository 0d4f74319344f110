package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
)

type OutboxNotificationMapper interface {
	ToModel(n *outbox.Notification) *models.OutboxNotificationModel
	ToDomain(model *models.OutboxNotificationModel) (*outbox.Notification, error)
}

type OutboxNotificationMapperImpl struct{}

func NewOutboxNotificationMapper() OutboxNotificationMapper {
	return &OutboxNotificationMapperImpl{}
}

func (m *OutboxNotificationMapperImpl) ToModel(n *outbox.Notification) *models.OutboxNotificationModel {
	model := &models.OutboxNotificationModel{
		ID:            n.ID(),
		OrgID:         n.OrgID(),
		UserID:        n.UserID(),
		Type:          n.Type().String(),
		Channel:       n.Channel().String(),
		Status:        n.Status().String(),
		Attempts:      n.Attempts(),
		LastAttemptAt: timeToMsPtr(n.LastAttemptAt()),
		ClaimedAt:     timeToMsPtr(n.ClaimedAt()),
		ErrorMessage:  n.ErrorMessage(),
		SentAt:        timeToMsPtr(n.SentAt()),
		CreatedAt:     n.CreatedAt().UnixMilli(),
		UpdatedAt:     n.UpdatedAt().UnixMilli(),
	}

	if payload := n.Payload(); len(payload) > 0 {
		payloadJSON, _ := json.Marshal(payload)
		model.Payload = datatypes.JSON(payloadJSON)
	}

	return model
}

func (m *OutboxNotificationMapperImpl) ToDomain(model *models.OutboxNotificationModel) (*outbox.Notification, error) {
	notType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, err
	}
	channel, err := vo.NewChannel(model.Channel)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, err
		}
	}

	return outbox.ReconstructNotification(
		model.ID,
		model.OrgID,
		model.UserID,
		notType,
		payload,
		channel,
		status,
		model.Attempts,
		msToTimePtr(model.LastAttemptAt),
		msToTimePtr(model.ClaimedAt),
		model.ErrorMessage,
		msToTimePtr(model.SentAt),
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
}
