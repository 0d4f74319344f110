package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"praxis/internal/domain/escalation"
	"praxis/internal/infrastructure/persistence/mappers"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
)

type EscalationRecordRepository struct {
	db     *gorm.DB
	mapper mappers.EscalationRecordMapper
}

func NewEscalationRecordRepository(db *gorm.DB) *EscalationRecordRepository {
	return &EscalationRecordRepository{
		db:     db,
		mapper: mappers.NewEscalationRecordMapper(),
	}
}

func (r *EscalationRecordRepository) Save(ctx context.Context, record *escalation.Record) error {
	model := r.mapper.ToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save escalation record: %w", err)
	}

	return record.SetID(model.ID)
}

func (r *EscalationRecordRepository) Update(ctx context.Context, record *escalation.Record) error {
	model := r.mapper.ToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EscalationRecordModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update escalation record: %w", result.Error)
	}
	return nil
}

func (r *EscalationRecordRepository) GetByID(ctx context.Context, id uint) (*escalation.Record, error) {
	var model models.EscalationRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("escalation record not found")
		}
		return nil, fmt.Errorf("failed to find escalation record: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EscalationRecordRepository) FindByWorkItem(ctx context.Context, workItemID uint) ([]*escalation.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.EscalationRecordModel
	err := tx.
		Where("work_item_id = ?", workItemID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find escalation records: %w", err)
	}

	records := make([]*escalation.Record, 0, len(rows))
	for i := range rows {
		record, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *EscalationRecordRepository) CountUnresolvedByWorkItem(ctx context.Context, workItemID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.EscalationRecordModel{}).
		Where("work_item_id = ? AND resolved_at IS NULL", workItemID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unresolved escalations: %w", err)
	}
	return count, nil
}
