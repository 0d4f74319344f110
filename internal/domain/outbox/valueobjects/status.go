package valueobjects

import "fmt"

// Status is the delivery state of an outbox notification.
//
// QUEUED rows are eligible for claiming. SENDING marks a claimed, in-flight
// row so concurrent drains cannot pick it up again; stale SENDING rows are
// returned to QUEUED by the lease reaper. SENT and FAILED are terminal.
type Status string

const (
	StatusQueued  Status = "QUEUED"
	StatusSending Status = "SENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid notification status: %s", value)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusQueued, StatusSending, StatusSent, StatusFailed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusFailed
}
