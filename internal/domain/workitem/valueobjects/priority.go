package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", value)
	}
	return p, nil
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// GetSLAHours returns the default SLA window for the priority. The policy
// behind these defaults is owned by the platform; the escalation subsystem
// only consumes the resulting due times.
func (p Priority) GetSLAHours() int {
	switch p {
	case PriorityCritical:
		return 8
	case PriorityHigh:
		return 24
	case PriorityMedium:
		return 48
	default:
		return 72
	}
}
