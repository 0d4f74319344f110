package valueobjects

import "fmt"

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid work item status: %s", value)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusBlocked, StatusDone, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the work item can no longer breach its SLA.
// Terminal items are never escalated.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

func (s Status) IsBlocked() bool {
	return s == StatusBlocked
}
