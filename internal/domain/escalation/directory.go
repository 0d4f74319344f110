package escalation

import (
	"context"

	vo "praxis/internal/domain/workitem/valueobjects"
)

// Recipient is one candidate for receiving an escalation.
type Recipient struct {
	UserID uint
	Role   string
}

// RecipientDirectory resolves who should receive an escalation at a given
// level for a project. Candidates are returned in suitability order; the
// engine picks the first. Role assignment itself is owned by the platform.
type RecipientDirectory interface {
	GetEscalationRecipients(ctx context.Context, projectID uint, level vo.EscalationLevel) ([]Recipient, error)
}
