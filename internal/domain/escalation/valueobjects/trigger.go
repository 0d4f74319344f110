package valueobjects

import "fmt"

// Trigger identifies what caused an escalation.
type Trigger string

const (
	TriggerSLABreach      Trigger = "SLA_BREACH"
	TriggerBlocked        Trigger = "BLOCKED"
	TriggerManual         Trigger = "MANUAL"
	TriggerPriorityChange Trigger = "PRIORITY_CHANGE"
)

func NewTrigger(value string) (Trigger, error) {
	t := Trigger(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid escalation trigger: %s", value)
	}
	return t, nil
}

func (t Trigger) IsValid() bool {
	switch t {
	case TriggerSLABreach, TriggerBlocked, TriggerManual, TriggerPriorityChange:
		return true
	}
	return false
}

func (t Trigger) String() string {
	return string(t)
}
