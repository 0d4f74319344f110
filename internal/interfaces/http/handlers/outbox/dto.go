package outbox

import (
	"praxis/internal/application/outbox/usecases"
)

type EnqueueNotificationRequest struct {
	UserID  uint                   `json:"user_id" binding:"required"`
	Type    string                 `json:"type" binding:"required"`
	Channel string                 `json:"channel" binding:"omitempty,oneof=email chat webhook"`
	Payload map[string]interface{} `json:"payload" binding:"required"`
}

func (r *EnqueueNotificationRequest) ToCommand(orgID uint) usecases.EnqueueNotificationCommand {
	channel := r.Channel
	if channel == "" {
		channel = "email"
	}
	return usecases.EnqueueNotificationCommand{
		OrgID:   orgID,
		UserID:  r.UserID,
		Type:    r.Type,
		Payload: r.Payload,
		Channel: channel,
	}
}

type UpdatePreferencesRequest struct {
	Channels map[string]bool `json:"channels"`
	Events   map[string]bool `json:"events"`
}

func (r *UpdatePreferencesRequest) ToCommand(orgID, userID uint) usecases.UpdatePreferencesCommand {
	return usecases.UpdatePreferencesCommand{
		OrgID:    orgID,
		UserID:   userID,
		Channels: r.Channels,
		Events:   r.Events,
	}
}
