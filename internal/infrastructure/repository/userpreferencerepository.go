package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praxis/internal/domain/outbox"
	"praxis/internal/infrastructure/persistence/mappers"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
)

type UserPreferenceRepository struct {
	db     *gorm.DB
	mapper mappers.UserPreferenceMapper
}

func NewUserPreferenceRepository(db *gorm.DB) *UserPreferenceRepository {
	return &UserPreferenceRepository{
		db:     db,
		mapper: mappers.NewUserPreferenceMapper(),
	}
}

// GetByUser returns nil without error when no row exists. Absence means the
// user never restricted anything, so every channel and event stays allowed.
func (r *UserPreferenceRepository) GetByUser(ctx context.Context, userID, orgID uint) (*outbox.Preference, error) {
	var model models.UserPreferenceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("user_id = ? AND org_id = ?", userID, orgID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user preference: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserPreferenceRepository) Upsert(ctx context.Context, p *outbox.Preference) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "org_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"channels", "events", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user preference: %w", err)
	}

	return p.SetID(model.ID)
}
