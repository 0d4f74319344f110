package delivery

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/logger"
)

// subjects per notification type. Payload may override with a "subject" key.
var emailSubjects = map[vo.NotificationType]string{
	vo.TypeTaskEscalated:      "A task you own was escalated",
	vo.TypeEscalationAssigned: "An escalation was assigned to you",
	vo.TypeEscalationResolved: "An escalation on your task was resolved",
	vo.TypeApprovalDue:        "An approval is waiting on you",
	vo.TypeSLAWarning:         "A task is approaching its SLA",
}

// EmailChannel delivers notifications over SMTP. The user store belongs to
// the wider platform, so the enqueuing side captures the recipient address in
// the payload under "recipient_email".
type EmailChannel struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	renderer *renderer
	logger   logger.Interface
}

func NewEmailChannel(cfg sharedConfig.EmailConfig, log logger.Interface) *EmailChannel {
	return &EmailChannel{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		renderer: newRenderer(),
		logger:   log,
	}
}

func (c *EmailChannel) Kind() vo.Channel {
	return vo.ChannelEmail
}

func (c *EmailChannel) Send(ctx context.Context, n *outbox.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := n.Payload()
	to, _ := payload["recipient_email"].(string)
	if to == "" {
		return fmt.Errorf("notification %d has no recipient_email in payload", n.ID())
	}

	subject := emailSubjects[n.Type()]
	if s, ok := payload["subject"].(string); ok && s != "" {
		subject = s
	}

	body, _ := payload["message"].(string)
	if body == "" {
		body = subject
	}

	htmlBody, err := c.renderer.ToHTMLSanitized(body)
	if err != nil {
		return fmt.Errorf("failed to render notification body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.from, c.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.AddAlternative("text/html", htmlBody)

	// gomail has no context support; the worker bounds us with a per-item
	// timeout and treats overruns as failed attempts.
	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		c.logger.Debugw("email notification sent", "notification_id", n.ID(), "type", n.Type().String())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
