package escalation

import "context"

type Repository interface {
	Save(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id uint) (*Record, error)

	// FindByWorkItem returns the full escalation history for a work item,
	// newest first.
	FindByWorkItem(ctx context.Context, workItemID uint) ([]*Record, error)

	// CountUnresolvedByWorkItem returns the number of unresolved records for
	// a work item. Used to decide whether resolving a record resets the
	// item's escalation level.
	CountUnresolvedByWorkItem(ctx context.Context, workItemID uint) (int64, error)
}
