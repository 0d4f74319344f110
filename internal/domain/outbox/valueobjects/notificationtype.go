package valueobjects

import "fmt"

// NotificationType is the closed set of event kinds the outbox carries.
// Preference rows key opt-outs by these values.
type NotificationType string

const (
	TypeTaskEscalated      NotificationType = "TASK_ESCALATED"
	TypeEscalationAssigned NotificationType = "ESCALATION_ASSIGNED"
	TypeEscalationResolved NotificationType = "ESCALATION_RESOLVED"
	TypeApprovalDue        NotificationType = "APPROVAL_DUE"
	TypeSLAWarning         NotificationType = "SLA_WARNING"
)

func NewNotificationType(value string) (NotificationType, error) {
	t := NotificationType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", value)
	}
	return t, nil
}

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeTaskEscalated, TypeEscalationAssigned, TypeEscalationResolved,
		TypeApprovalDue, TypeSLAWarning:
		return true
	}
	return false
}

func (t NotificationType) String() string {
	return string(t)
}

// PreferenceKey is the column-style key preference rows use for this event
// type, e.g. "event_approval_due".
func (t NotificationType) PreferenceKey() string {
	switch t {
	case TypeTaskEscalated:
		return "event_task_escalated"
	case TypeEscalationAssigned:
		return "event_escalation_assigned"
	case TypeEscalationResolved:
		return "event_escalation_resolved"
	case TypeApprovalDue:
		return "event_approval_due"
	case TypeSLAWarning:
		return "event_sla_warning"
	}
	return ""
}
