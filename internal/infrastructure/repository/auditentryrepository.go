package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"praxis/internal/domain/audit"
	"praxis/internal/infrastructure/persistence/mappers"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
	"praxis/internal/shared/errors"
)

const defaultAppendRetries = 5

type AuditEntryRepository struct {
	db            *gorm.DB
	mapper        mappers.AuditEntryMapper
	appendRetries int
}

func NewAuditEntryRepository(db *gorm.DB, appendRetries int) *AuditEntryRepository {
	if appendRetries <= 0 {
		appendRetries = defaultAppendRetries
	}
	return &AuditEntryRepository{
		db:            db,
		mapper:        mappers.NewAuditEntryMapper(),
		appendRetries: appendRetries,
	}
}

// Append chains the entry onto the org's tail and inserts it. The unique
// (org_id, seq) index serializes concurrent appends: when two writers read
// the same tail, the second insert collides and re-reads.
func (r *AuditEntryRepository) Append(ctx context.Context, e *audit.Entry) error {
	var lastErr error
	for attempt := 0; attempt < r.appendRetries; attempt++ {
		tail, err := r.GetTail(ctx, e.OrgID())
		if err != nil {
			return err
		}

		if tail == nil {
			e.Chain(1, audit.GenesisHash)
		} else {
			e.Chain(tail.Seq()+1, tail.RecordHash())
		}

		model := r.mapper.ToModel(e)
		tx := db.GetTxFromContext(ctx, r.db)
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	}
	return fmt.Errorf("failed to append audit entry after %d attempts: %w", r.appendRetries, lastErr)
}

func (r *AuditEntryRepository) GetTail(ctx context.Context, orgID uint) (*audit.Entry, error) {
	var model models.AuditEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("org_id = ?", orgID).Order("seq DESC").First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find audit tail: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AuditEntryRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AuditEntryModel{})

	if filter.OrgID != 0 {
		query = query.Where("org_id = ?", filter.OrgID)
	}
	if filter.ActorID != 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action.String())
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		query = query.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", filter.To.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var rows []models.AuditEntryModel
	err := query.
		Order("created_at DESC, seq DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries, err := r.toDomainSlice(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *AuditEntryRepository) ListAllByOrg(ctx context.Context, orgID uint, limit int) ([]*audit.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AuditEntryModel
	err := tx.
		Where("org_id = ?", orgID).
		Order("seq ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *AuditEntryRepository) toDomainSlice(rows []models.AuditEntryModel) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
