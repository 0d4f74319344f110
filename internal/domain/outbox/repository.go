package outbox

import (
	"context"
	"time"

	vo "praxis/internal/domain/outbox/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)

	// FindQueuedIDs returns up to limit QUEUED notification ids with
	// attempts below the ceiling, oldest first. Selection is advisory; only
	// ClaimForSending confers ownership.
	FindQueuedIDs(ctx context.Context, limit, maxAttempts int) ([]uint, error)

	// ClaimForSending atomically moves a QUEUED row to SENDING and stamps
	// the claim time. It returns false when another worker already owns the
	// row. This conditional update is the double-delivery guard: two
	// concurrent drains may select the same id but only one claim succeeds.
	ClaimForSending(ctx context.Context, id uint, maxAttempts int, at time.Time) (bool, error)

	// ReleaseStaleClaims returns SENDING rows whose claim is older than the
	// lease back to QUEUED, so a crashed worker cannot strand notifications.
	// Returns the number of rows released.
	ReleaseStaleClaims(ctx context.Context, olderThan time.Time) (int64, error)

	// CountByStatusSince aggregates notification counts per status created
	// after the cutoff, for queue statistics.
	CountByStatusSince(ctx context.Context, orgID uint, since time.Time) (map[vo.Status]int64, error)

	// OldestQueuedAge returns the age of the oldest QUEUED row, or nil when
	// the queue is empty.
	OldestQueuedAge(ctx context.Context, orgID uint, now time.Time) (*time.Duration, error)
}

type PreferenceRepository interface {
	// GetByUser returns nil (without error) when the user has no preference
	// row; the caller treats that as everything-allowed.
	GetByUser(ctx context.Context, userID, orgID uint) (*Preference, error)
	Upsert(ctx context.Context, p *Preference) error
}

// DeliveryChannel abstracts the real transport. Implementations must be safe
// for concurrent use; the worker bounds each Send with a per-item timeout.
type DeliveryChannel interface {
	Send(ctx context.Context, n *Notification) error
	Kind() vo.Channel
}
