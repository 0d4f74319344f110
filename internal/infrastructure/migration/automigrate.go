package migration

import (
	"praxis/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.WorkItemModel{},
		&models.EscalationRecordModel{},
		&models.OutboxNotificationModel{},
		&models.UserPreferenceModel{},
		&models.AuditEntryModel{},
		&models.ProjectMemberModel{},
	}
}
