package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"praxis/internal/domain/escalation"
	wivo "praxis/internal/domain/workitem/valueobjects"
	"praxis/internal/infrastructure/persistence/models"
	"praxis/internal/shared/db"
)

// escalationLevelRoles maps each escalation level to the project role that
// receives it.
var escalationLevelRoles = map[wivo.EscalationLevel]string{
	wivo.LevelInitiativeOwner: "initiative_owner",
	wivo.LevelPMOLead:         "pmo_lead",
	wivo.LevelSponsor:         "sponsor",
}

// ProjectMemberDirectory resolves escalation recipients from project
// membership rows maintained by the wider platform.
type ProjectMemberDirectory struct {
	db *gorm.DB
}

func NewProjectMemberDirectory(db *gorm.DB) *ProjectMemberDirectory {
	return &ProjectMemberDirectory{db: db}
}

func (d *ProjectMemberDirectory) GetEscalationRecipients(ctx context.Context, projectID uint, level wivo.EscalationLevel) ([]escalation.Recipient, error) {
	role, ok := escalationLevelRoles[level]
	if !ok {
		return nil, fmt.Errorf("no recipient role for escalation level %s", level)
	}

	tx := db.GetTxFromContext(ctx, d.db)

	var rows []models.ProjectMemberModel
	err := tx.
		Where("project_id = ? AND role = ?", projectID, role).
		Order("position ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find escalation recipients: %w", err)
	}

	recipients := make([]escalation.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, escalation.Recipient{
			UserID: row.UserID,
			Role:   row.Role,
		})
	}
	return recipients, nil
}
