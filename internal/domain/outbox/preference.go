package outbox

import (
	"fmt"
	"time"

	vo "praxis/internal/domain/outbox/valueobjects"
)

// Preference is one user's notification opt-in state within an organization.
// Absence of a preference row means everything is allowed; absence of a key
// inside an existing row also means allowed. Only an explicit false disables
// an event type or channel.
type Preference struct {
	id        uint
	userID    uint
	orgID     uint
	channels  map[string]bool
	events    map[string]bool
	updatedAt time.Time
}

func NewPreference(userID, orgID uint, channels, events map[string]bool) (*Preference, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if channels == nil {
		channels = make(map[string]bool)
	}
	if events == nil {
		events = make(map[string]bool)
	}

	return &Preference{
		userID:    userID,
		orgID:     orgID,
		channels:  channels,
		events:    events,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructPreference(id, userID, orgID uint, channels, events map[string]bool, updatedAt time.Time) (*Preference, error) {
	if id == 0 {
		return nil, fmt.Errorf("preference ID cannot be zero")
	}
	if channels == nil {
		channels = make(map[string]bool)
	}
	if events == nil {
		events = make(map[string]bool)
	}
	return &Preference{
		id:        id,
		userID:    userID,
		orgID:     orgID,
		channels:  channels,
		events:    events,
		updatedAt: updatedAt,
	}, nil
}

func (p *Preference) ID() uint             { return p.id }
func (p *Preference) UserID() uint         { return p.userID }
func (p *Preference) OrgID() uint          { return p.orgID }
func (p *Preference) UpdatedAt() time.Time { return p.updatedAt }

func (p *Preference) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("preference ID is already set")
	}
	p.id = id
	return nil
}

// Channels returns a copy of the channel toggle map.
func (p *Preference) Channels() map[string]bool {
	out := make(map[string]bool, len(p.channels))
	for k, v := range p.channels {
		out[k] = v
	}
	return out
}

// Events returns a copy of the per-event-type toggle map.
func (p *Preference) Events() map[string]bool {
	out := make(map[string]bool, len(p.events))
	for k, v := range p.events {
		out[k] = v
	}
	return out
}

// AllowsEvent reports whether the event type may be enqueued for this user.
func (p *Preference) AllowsEvent(t vo.NotificationType) bool {
	enabled, ok := p.events[t.PreferenceKey()]
	if !ok {
		return true
	}
	return enabled
}

// AllowsChannel reports whether the channel is enabled for this user.
func (p *Preference) AllowsChannel(c vo.Channel) bool {
	enabled, ok := p.channels[c.String()]
	if !ok {
		return true
	}
	return enabled
}

// Merge applies partial updates on top of the existing toggles.
func (p *Preference) Merge(channels, events map[string]bool) {
	for k, v := range channels {
		p.channels[k] = v
	}
	for k, v := range events {
		p.events[k] = v
	}
	p.updatedAt = time.Now()
}
