package valueobjects

import "fmt"

// Channel is the transport a notification is delivered through.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelChat    Channel = "chat"
	ChannelWebhook Channel = "webhook"
)

func NewChannel(value string) (Channel, error) {
	c := Channel(value)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid notification channel: %s", value)
	}
	return c, nil
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelChat, ChannelWebhook:
		return true
	}
	return false
}

func (c Channel) String() string {
	return string(c)
}
