package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"praxis/internal/domain/outbox"
	vo "praxis/internal/domain/outbox/valueobjects"
	"praxis/internal/infrastructure/persistence/mappers"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
)

type OutboxNotificationRepository struct {
	db     *gorm.DB
	mapper mappers.OutboxNotificationMapper
}

func NewOutboxNotificationRepository(db *gorm.DB) *OutboxNotificationRepository {
	return &OutboxNotificationRepository{
		db:     db,
		mapper: mappers.NewOutboxNotificationMapper(),
	}
}

func (r *OutboxNotificationRepository) Save(ctx context.Context, n *outbox.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *OutboxNotificationRepository) Update(ctx context.Context, n *outbox.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OutboxNotificationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	return nil
}

func (r *OutboxNotificationRepository) GetByID(ctx context.Context, id uint) (*outbox.Notification, error) {
	var model models.OutboxNotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OutboxNotificationRepository) FindQueuedIDs(ctx context.Context, limit, maxAttempts int) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	err := tx.
		Model(&models.OutboxNotificationModel{}).
		Where("status = ? AND attempts < ?", vo.StatusQueued.String(), maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find queued notifications: %w", err)
	}
	return ids, nil
}

// ClaimForSending is a single conditional UPDATE. The status guard in the
// WHERE clause makes it atomic: of two workers racing for the same row,
// exactly one sees QUEUED and flips it to SENDING.
func (r *OutboxNotificationRepository) ClaimForSending(ctx context.Context, id uint, maxAttempts int, at time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OutboxNotificationModel{}).
		Where("id = ? AND status = ? AND attempts < ?", id, vo.StatusQueued.String(), maxAttempts).
		Updates(map[string]interface{}{
			"status":     vo.StatusSending.String(),
			"claimed_at": at.UnixMilli(),
			"updated_at": at.UnixMilli(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim notification: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *OutboxNotificationRepository) ReleaseStaleClaims(ctx context.Context, olderThan time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OutboxNotificationModel{}).
		Where("status = ? AND claimed_at IS NOT NULL AND claimed_at < ?", vo.StatusSending.String(), olderThan.UnixMilli()).
		Updates(map[string]interface{}{
			"status":     vo.StatusQueued.String(),
			"claimed_at": nil,
			"updated_at": time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to release stale claims: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *OutboxNotificationRepository) CountByStatusSince(ctx context.Context, orgID uint, since time.Time) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	type bucket struct {
		Status string
		Count  int64
	}
	var buckets []bucket
	err := tx.
		Model(&models.OutboxNotificationModel{}).
		Select("status, COUNT(*) AS count").
		Where("org_id = ? AND created_at >= ?", orgID, since.UnixMilli()).
		Group("status").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(buckets))
	for _, b := range buckets {
		status, err := vo.NewStatus(b.Status)
		if err != nil {
			return nil, err
		}
		counts[status] = b.Count
	}
	return counts, nil
}

func (r *OutboxNotificationRepository) OldestQueuedAge(ctx context.Context, orgID uint, now time.Time) (*time.Duration, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var oldest sql.NullInt64
	err := tx.
		Model(&models.OutboxNotificationModel{}).
		Select("MIN(created_at)").
		Where("org_id = ? AND status = ?", orgID, vo.StatusQueued.String()).
		Scan(&oldest).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find oldest queued notification: %w", err)
	}
	if !oldest.Valid {
		return nil, nil
	}

	age := now.Sub(time.UnixMilli(oldest.Int64))
	if age < 0 {
		age = 0
	}
	return &age, nil
}
