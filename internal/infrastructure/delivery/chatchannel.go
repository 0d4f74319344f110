package delivery

import (
	"context"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/logger"
)

// ChatChannel is a stand-in transport. The real chat integration lives in the
// wider platform; here delivery just logs so the outbox lifecycle stays
// exercisable end to end.
type ChatChannel struct {
	logger logger.Interface
}

func NewChatChannel(log logger.Interface) *ChatChannel {
	return &ChatChannel{logger: log.Named("chat-channel")}
}

func (c *ChatChannel) Kind() vo.Channel {
	return vo.ChannelChat
}

func (c *ChatChannel) Send(ctx context.Context, n *outbox.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Infow("chat notification delivered",
		"notification_id", n.ID(),
		"org_id", n.OrgID(),
		"user_id", n.UserID(),
		"type", n.Type().String(),
	)
	return nil
}
