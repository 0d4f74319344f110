package outbox

import (
	"fmt"
	"time"

	vo "praxis/internal/domain/outbox/valueobjects"
)

// Notification is a durable intent-to-notify. The triggering transaction
// enqueues it; the delivery worker owns all later mutations. Rows are never
// deleted; they are retained for the statistics window.
type Notification struct {
	id            uint
	orgID         uint
	userID        uint
	notType       vo.NotificationType
	payload       map[string]interface{}
	channel       vo.Channel
	status        vo.Status
	attempts      int
	lastAttemptAt *time.Time
	claimedAt     *time.Time
	errorMessage  string
	sentAt        *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewNotification(
	orgID uint,
	userID uint,
	notType vo.NotificationType,
	payload map[string]interface{},
	channel vo.Channel,
) (*Notification, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel")
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	now := time.Now()
	return &Notification{
		orgID:     orgID,
		userID:    userID,
		notType:   notType,
		payload:   payload,
		channel:   channel,
		status:    vo.StatusQueued,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotification(
	id uint,
	orgID uint,
	userID uint,
	notType vo.NotificationType,
	payload map[string]interface{},
	channel vo.Channel,
	status vo.Status,
	attempts int,
	lastAttemptAt *time.Time,
	claimedAt *time.Time,
	errorMessage string,
	sentAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &Notification{
		id:            id,
		orgID:         orgID,
		userID:        userID,
		notType:       notType,
		payload:       payload,
		channel:       channel,
		status:        status,
		attempts:      attempts,
		lastAttemptAt: lastAttemptAt,
		claimedAt:     claimedAt,
		errorMessage:  errorMessage,
		sentAt:        sentAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (n *Notification) ID() uint                     { return n.id }
func (n *Notification) OrgID() uint                  { return n.orgID }
func (n *Notification) UserID() uint                 { return n.userID }
func (n *Notification) Type() vo.NotificationType    { return n.notType }
func (n *Notification) Channel() vo.Channel          { return n.channel }
func (n *Notification) Status() vo.Status            { return n.status }
func (n *Notification) Attempts() int                { return n.attempts }
func (n *Notification) LastAttemptAt() *time.Time    { return n.lastAttemptAt }
func (n *Notification) ClaimedAt() *time.Time        { return n.claimedAt }
func (n *Notification) ErrorMessage() string         { return n.errorMessage }
func (n *Notification) SentAt() *time.Time           { return n.sentAt }
func (n *Notification) CreatedAt() time.Time         { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time         { return n.updatedAt }

// Payload returns a copy of the opaque payload.
func (n *Notification) Payload() map[string]interface{} {
	out := make(map[string]interface{}, len(n.payload))
	for k, v := range n.payload {
		out[k] = v
	}
	return out
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkSent records a successful delivery.
func (n *Notification) MarkSent(at time.Time) error {
	if n.status.IsTerminal() {
		return fmt.Errorf("notification is already %s", n.status)
	}
	n.status = vo.StatusSent
	n.sentAt = &at
	n.lastAttemptAt = &at
	n.attempts++
	n.claimedAt = nil
	n.updatedAt = at
	return nil
}

// MarkFailedAttempt records a delivery failure. The row returns to QUEUED for
// a later pass unless the attempt ceiling was reached, in which case it goes
// FAILED and is never re-attempted.
func (n *Notification) MarkFailedAttempt(maxAttempts int, cause error, at time.Time) error {
	if n.status.IsTerminal() {
		return fmt.Errorf("notification is already %s", n.status)
	}
	n.attempts++
	n.lastAttemptAt = &at
	n.claimedAt = nil
	n.updatedAt = at
	if cause != nil {
		n.errorMessage = cause.Error()
	}

	if n.attempts >= maxAttempts {
		n.status = vo.StatusFailed
	} else {
		n.status = vo.StatusQueued
	}
	return nil
}

// IsExhausted reports whether the attempt ceiling was reached.
func (n *Notification) IsExhausted(maxAttempts int) bool {
	return n.attempts >= maxAttempts
}
