package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
)

const testMaxAttempts = 3

func createTestNotification(t *testing.T, orgID, userID uint) *outbox.Notification {
	t.Helper()

	n, err := outbox.NewNotification(orgID, userID, vo.TypeTaskEscalated, map[string]interface{}{
		"work_item_id": float64(12),
	}, vo.ChannelEmail)
	require.NoError(t, err)
	return n
}

func saveTestNotification(t *testing.T, repo *OutboxNotificationRepository, orgID, userID uint) *outbox.Notification {
	t.Helper()

	n := createTestNotification(t, orgID, userID)
	require.NoError(t, repo.Save(context.Background(), n))
	return n
}

func TestOutboxNotificationRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)
	ctx := context.Background()

	n := saveTestNotification(t, repo, 1, 7)
	assert.NotZero(t, n.ID())

	found, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusQueued, found.Status())
	assert.Equal(t, vo.TypeTaskEscalated, found.Type())
	assert.Equal(t, float64(12), found.Payload()["work_item_id"])
	assert.Zero(t, found.Attempts())
}

func TestOutboxNotificationRepository_FindQueuedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)
	ctx := context.Background()

	first := saveTestNotification(t, repo, 1, 7)
	second := saveTestNotification(t, repo, 1, 8)

	// Exhausted rows stay QUEUED in the table but are never selected.
	exhausted := saveTestNotification(t, repo, 1, 9)
	err := db.Model(&models.OutboxNotificationModel{}).
		Where("id = ?", exhausted.ID()).
		Update("attempts", testMaxAttempts).Error
	require.NoError(t, err)

	sent := saveTestNotification(t, repo, 1, 10)
	require.NoError(t, sent.MarkSent(time.Now()))
	require.NoError(t, repo.Update(ctx, sent))

	ids, err := repo.FindQueuedIDs(ctx, 10, testMaxAttempts)
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID(), second.ID()}, ids)
}

func TestOutboxNotificationRepository_ClaimForSending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)
	ctx := context.Background()

	t.Run("first claim wins, second loses", func(t *testing.T) {
		n := saveTestNotification(t, repo, 1, 7)

		claimed, err := repo.ClaimForSending(ctx, n.ID(), testMaxAttempts, time.Now())
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repo.ClaimForSending(ctx, n.ID(), testMaxAttempts, time.Now())
		require.NoError(t, err)
		assert.False(t, claimed)

		found, err := repo.GetByID(ctx, n.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusSending, found.Status())
		require.NotNil(t, found.ClaimedAt())
	})

	t.Run("exhausted row cannot be claimed", func(t *testing.T) {
		n := saveTestNotification(t, repo, 1, 8)
		err := db.Model(&models.OutboxNotificationModel{}).
			Where("id = ?", n.ID()).
			Update("attempts", testMaxAttempts).Error
		require.NoError(t, err)

		claimed, err := repo.ClaimForSending(ctx, n.ID(), testMaxAttempts, time.Now())
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		claimed, err := repo.ClaimForSending(ctx, 99999, testMaxAttempts, time.Now())
		require.NoError(t, err)
		assert.False(t, claimed)
	})
}

func TestOutboxNotificationRepository_ReleaseStaleClaims(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)
	ctx := context.Background()
	now := time.Now()

	stale := saveTestNotification(t, repo, 1, 7)
	claimed, err := repo.ClaimForSending(ctx, stale.ID(), testMaxAttempts, now.Add(-10*time.Minute))
	require.NoError(t, err)
	require.True(t, claimed)

	fresh := saveTestNotification(t, repo, 1, 8)
	claimed, err = repo.ClaimForSending(ctx, fresh.ID(), testMaxAttempts, now.Add(-30*time.Second))
	require.NoError(t, err)
	require.True(t, claimed)

	released, err := repo.ReleaseStaleClaims(ctx, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	found, err := repo.GetByID(ctx, stale.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusQueued, found.Status())
	assert.Nil(t, found.ClaimedAt())

	found, err = repo.GetByID(ctx, fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusSending, found.Status())
}

func TestOutboxNotificationRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)
	ctx := context.Background()
	now := time.Now()

	saveTestNotification(t, repo, 1, 7)
	saveTestNotification(t, repo, 1, 8)

	sent := saveTestNotification(t, repo, 1, 9)
	require.NoError(t, sent.MarkSent(now))
	require.NoError(t, repo.Update(ctx, sent))

	// Other tenant stays out of the counts.
	saveTestNotification(t, repo, 2, 10)

	counts, err := repo.CountByStatusSince(ctx, 1, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[vo.StatusQueued])
	assert.Equal(t, int64(1), counts[vo.StatusSent])

	age, err := repo.OldestQueuedAge(ctx, 1, now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, age)
	assert.Greater(t, *age, time.Duration(0))
}

func TestOutboxNotificationRepository_OldestQueuedAgeEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOutboxNotificationRepository(db)

	age, err := repo.OldestQueuedAge(context.Background(), 1, time.Now())
	require.NoError(t, err)
	assert.Nil(t, age)
}

func TestUserPreferenceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPreferenceRepository(db)
	ctx := context.Background()

	t.Run("missing row returns nil without error", func(t *testing.T) {
		pref, err := repo.GetByUser(ctx, 7, 1)
		require.NoError(t, err)
		assert.Nil(t, pref)
	})

	t.Run("upsert inserts then updates in place", func(t *testing.T) {
		pref, err := outbox.NewPreference(7, 1, map[string]bool{"email": false}, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, pref))
		assert.NotZero(t, pref.ID())

		found, err := repo.GetByUser(ctx, 7, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.AllowsChannel(vo.ChannelEmail))

		found.Merge(map[string]bool{"email": true}, map[string]bool{vo.TypeTaskEscalated.PreferenceKey(): false})
		require.NoError(t, repo.Upsert(ctx, found))

		again, err := repo.GetByUser(ctx, 7, 1)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.True(t, again.AllowsChannel(vo.ChannelEmail))
		assert.False(t, again.AllowsEvent(vo.TypeTaskEscalated))

		var total int64
		require.NoError(t, db.Model(&models.UserPreferenceModel{}).Count(&total).Error)
		assert.Equal(t, int64(1), total)
	})
}
