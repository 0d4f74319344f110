package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"praxis/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.WorkItemModel{},
		&models.EscalationRecordModel{},
		&models.OutboxNotificationModel{},
		&models.UserPreferenceModel{},
		&models.AuditEntryModel{},
		&models.ProjectMemberModel{},
	)
	require.NoError(t, err)

	return db
}
