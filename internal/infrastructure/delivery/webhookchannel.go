package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/shared/logger"
)

// WebhookChannel posts notifications as JSON to a per-notification endpoint.
// The target URL is captured in the payload under "webhook_url" by the
// enqueuing side.
type WebhookChannel struct {
	client *http.Client
	logger logger.Interface
}

func NewWebhookChannel(log logger.Interface) *WebhookChannel {
	return &WebhookChannel{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: log.Named("webhook-channel"),
	}
}

func (c *WebhookChannel) Kind() vo.Channel {
	return vo.ChannelWebhook
}

func (c *WebhookChannel) Send(ctx context.Context, n *outbox.Notification) error {
	payload := n.Payload()
	url, _ := payload["webhook_url"].(string)
	if url == "" {
		return fmt.Errorf("notification %d has no webhook_url in payload", n.ID())
	}

	body := map[string]interface{}{
		"id":      n.ID(),
		"org_id":  n.OrgID(),
		"user_id": n.UserID(),
		"type":    n.Type().String(),
		"payload": payload,
		"sent_at": time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}

	c.logger.Debugw("webhook notification delivered", "notification_id", n.ID(), "status", resp.StatusCode)
	return nil
}
