package valueobjects

import "fmt"

// Action is the closed enumeration of governed actions the ledger accepts.
// Unknown actions are rejected at log time so the ledger cannot be polluted
// with free-form strings.
type Action string

const (
	ActionEscalateTask       Action = "ESCALATE_TASK"
	ActionResolveEscalation  Action = "RESOLVE_ESCALATION"
	ActionRunSLACheck        Action = "RUN_SLA_CHECK"
	ActionUpdatePreferences  Action = "UPDATE_PREFERENCES"
	ActionNotificationSent   Action = "NOTIFICATION_SENT"
	ActionNotificationFailed Action = "NOTIFICATION_FAILED"
	ActionExportAuditLog     Action = "EXPORT_AUDIT_LOG"
	ActionCreateWorkItem     Action = "CREATE_WORK_ITEM"
	ActionUpdateWorkItem     Action = "UPDATE_WORK_ITEM"
	ActionAssignWorkItem     Action = "ASSIGN_WORK_ITEM"
)

func NewAction(value string) (Action, error) {
	a := Action(value)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid audit action: %s", value)
	}
	return a, nil
}

func (a Action) IsValid() bool {
	switch a {
	case ActionEscalateTask, ActionResolveEscalation, ActionRunSLACheck,
		ActionUpdatePreferences, ActionNotificationSent, ActionNotificationFailed,
		ActionExportAuditLog, ActionCreateWorkItem, ActionUpdateWorkItem,
		ActionAssignWorkItem:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
