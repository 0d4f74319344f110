package valueobjects

import "fmt"

// EscalationLevel is the ordinal position of a work item on the
// responsibility chain: 0 (none) through 3 (sponsor), terminal at 3.
type EscalationLevel int

const (
	LevelNone            EscalationLevel = 0
	LevelInitiativeOwner EscalationLevel = 1
	LevelPMOLead         EscalationLevel = 2
	LevelSponsor         EscalationLevel = 3

	// MaxEscalationLevel is the terminal level.
	MaxEscalationLevel = LevelSponsor
)

func NewEscalationLevel(value int) (EscalationLevel, error) {
	l := EscalationLevel(value)
	if !l.IsValid() {
		return 0, fmt.Errorf("invalid escalation level: %d", value)
	}
	return l, nil
}

func (l EscalationLevel) IsValid() bool {
	return l >= LevelNone && l <= MaxEscalationLevel
}

func (l EscalationLevel) Int() int {
	return int(l)
}

// IsMax reports whether the level is terminal and cannot be raised further.
func (l EscalationLevel) IsMax() bool {
	return l >= MaxEscalationLevel
}

// Next returns the level one step up the chain.
func (l EscalationLevel) Next() (EscalationLevel, error) {
	if l.IsMax() {
		return l, fmt.Errorf("escalation level %d is terminal", l)
	}
	return l + 1, nil
}

func (l EscalationLevel) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelInitiativeOwner:
		return "INITIATIVE_OWNER"
	case LevelPMOLead:
		return "PMO_LEAD"
	case LevelSponsor:
		return "SPONSOR"
	}
	return fmt.Sprintf("LEVEL_%d", l)
}
