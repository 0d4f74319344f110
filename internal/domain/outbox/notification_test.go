package outbox

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "praxis/internal/domain/outbox/valueobjects"
)

const testMaxAttempts = 3

func newQueuedNotification(t *testing.T) *Notification {
	t.Helper()
	n, err := NewNotification(1, 42, vo.TypeTaskEscalated, map[string]interface{}{"work_item_id": 7}, vo.ChannelEmail)
	require.NoError(t, err)
	require.NoError(t, n.SetID(100))
	return n
}

func TestNewNotification(t *testing.T) {
	n := newQueuedNotification(t)

	assert.Equal(t, vo.StatusQueued, n.Status())
	assert.Equal(t, 0, n.Attempts())
	assert.Nil(t, n.SentAt())
	assert.Nil(t, n.ClaimedAt())
}

func TestNewNotification_InvalidInput(t *testing.T) {
	_, err := NewNotification(0, 42, vo.TypeTaskEscalated, nil, vo.ChannelEmail)
	assert.Error(t, err, "missing org")

	_, err = NewNotification(1, 0, vo.TypeTaskEscalated, nil, vo.ChannelEmail)
	assert.Error(t, err, "missing user")

	_, err = NewNotification(1, 42, vo.NotificationType("bogus"), nil, vo.ChannelEmail)
	assert.Error(t, err, "unknown type")

	_, err = NewNotification(1, 42, vo.TypeTaskEscalated, nil, vo.Channel("pigeon"))
	assert.Error(t, err, "unknown channel")
}

func TestMarkSent(t *testing.T) {
	n := newQueuedNotification(t)
	now := time.Now()

	require.NoError(t, n.MarkSent(now))

	assert.Equal(t, vo.StatusSent, n.Status())
	assert.Equal(t, 1, n.Attempts())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, now, *n.SentAt())
	assert.Nil(t, n.ClaimedAt())

	assert.Error(t, n.MarkSent(now.Add(time.Minute)), "terminal rows reject further transitions")
}

func TestMarkFailedAttempt_RequeuesBelowCeiling(t *testing.T) {
	n := newQueuedNotification(t)
	now := time.Now()

	require.NoError(t, n.MarkFailedAttempt(testMaxAttempts, errors.New("smtp timeout"), now))

	assert.Equal(t, vo.StatusQueued, n.Status())
	assert.Equal(t, 1, n.Attempts())
	assert.Equal(t, "smtp timeout", n.ErrorMessage())
	assert.False(t, n.IsExhausted(testMaxAttempts))
}

func TestMarkFailedAttempt_FailsAtCeiling(t *testing.T) {
	n := newQueuedNotification(t)
	now := time.Now()

	for i := 0; i < testMaxAttempts-1; i++ {
		require.NoError(t, n.MarkFailedAttempt(testMaxAttempts, errors.New("refused"), now))
		assert.Equal(t, vo.StatusQueued, n.Status())
	}

	require.NoError(t, n.MarkFailedAttempt(testMaxAttempts, errors.New("refused"), now))
	assert.Equal(t, vo.StatusFailed, n.Status())
	assert.Equal(t, testMaxAttempts, n.Attempts())
	assert.True(t, n.IsExhausted(testMaxAttempts))

	assert.Error(t, n.MarkFailedAttempt(testMaxAttempts, errors.New("refused"), now), "FAILED is terminal")
}

func TestPreference_Defaults(t *testing.T) {
	p, err := NewPreference(42, 1, nil, nil)
	require.NoError(t, err)

	// No explicit toggles: everything is allowed.
	assert.True(t, p.AllowsEvent(vo.TypeApprovalDue))
	assert.True(t, p.AllowsChannel(vo.ChannelEmail))
	assert.True(t, p.AllowsChannel(vo.ChannelChat))
}

func TestPreference_ExplicitOptOut(t *testing.T) {
	p, err := NewPreference(42, 1,
		map[string]bool{"email": false},
		map[string]bool{"event_approval_due": false, "event_sla_warning": true},
	)
	require.NoError(t, err)

	assert.False(t, p.AllowsChannel(vo.ChannelEmail))
	assert.True(t, p.AllowsChannel(vo.ChannelChat), "untouched channels stay allowed")
	assert.False(t, p.AllowsEvent(vo.TypeApprovalDue))
	assert.True(t, p.AllowsEvent(vo.TypeSLAWarning))
	assert.True(t, p.AllowsEvent(vo.TypeTaskEscalated), "untouched events stay allowed")
}

func TestPreference_Merge(t *testing.T) {
	p, err := NewPreference(42, 1, map[string]bool{"email": false}, nil)
	require.NoError(t, err)

	p.Merge(map[string]bool{"email": true, "chat": false}, map[string]bool{"event_sla_warning": false})

	assert.True(t, p.AllowsChannel(vo.ChannelEmail))
	assert.False(t, p.AllowsChannel(vo.ChannelChat))
	assert.False(t, p.AllowsEvent(vo.TypeSLAWarning))
}
