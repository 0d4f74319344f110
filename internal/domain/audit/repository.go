package audit

import (
	"context"
	"time"

	vo "praxis/internal/domain/audit/valueobjects"
)

// Filter narrows audit reads. Zero values mean "no constraint".
type Filter struct {
	OrgID        uint
	ActorID      uint
	Action       vo.Action
	ResourceType string
	ResourceID   string
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}

type Repository interface {
	// Append persists an entry at the next per-org sequence position. The
	// implementation owns the serialization point: it reads the org's tail,
	// chains the entry, and inserts under a unique (org_id, seq) index,
	// retrying on sequence collision.
	Append(ctx context.Context, e *Entry) error

	// GetTail returns the highest-seq entry for the org, or nil when the
	// chain is empty.
	GetTail(ctx context.Context, orgID uint) (*Entry, error)

	List(ctx context.Context, filter Filter) ([]*Entry, int64, error)

	// ListAllByOrg returns the org's full chain in seq order, capped at
	// limit rows, for export and verification.
	ListAllByOrg(ctx context.Context, orgID uint, limit int) ([]*Entry, error)
}

// Redactor strips sensitive keys from before/after snapshots prior to
// persistence. Redaction happens once, at write time; stored snapshots are
// already clean.
type Redactor interface {
	Redact(snapshot map[string]interface{}) map[string]interface{}
}
