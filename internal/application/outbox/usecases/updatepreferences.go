package usecases

import (
	"context"

	auditvo "praxis/internal/domain/audit/valueobjects"
	"praxis/internal/domain/outbox"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

type UpdatePreferencesCommand struct {
	OrgID    uint
	UserID   uint
	Channels map[string]bool
	Events   map[string]bool
}

type UpdatePreferencesResult struct {
	UserID   uint            `json:"user_id"`
	Channels map[string]bool `json:"channels"`
	Events   map[string]bool `json:"events"`
}

// PreferenceAuditor records preference changes in the audit ledger.
type PreferenceAuditor interface {
	RecordPreferenceChange(ctx context.Context, orgID, userID uint, action auditvo.Action, before, after map[string]interface{}) error
}

type UpdatePreferencesUseCase struct {
	preferenceRepo outbox.PreferenceRepository
	auditor        PreferenceAuditor
	logger         logger.Interface
}

func NewUpdatePreferencesUseCase(
	preferenceRepo outbox.PreferenceRepository,
	auditor PreferenceAuditor,
	logger logger.Interface,
) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		preferenceRepo: preferenceRepo,
		auditor:        auditor,
		logger:         logger,
	}
}

// Execute upserts the (user, org) preference row, merging partial updates on
// top of existing toggles.
func (uc *UpdatePreferencesUseCase) Execute(
	ctx context.Context,
	cmd UpdatePreferencesCommand,
) (*UpdatePreferencesResult, error) {
	if cmd.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.Channels) == 0 && len(cmd.Events) == 0 {
		return nil, errors.NewValidationError("at least one preference toggle is required")
	}

	pref, err := uc.preferenceRepo.GetByUser(ctx, cmd.UserID, cmd.OrgID)
	if err != nil {
		uc.logger.Errorw("failed to load user preference", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to load user preference")
	}

	var before map[string]interface{}
	if pref == nil {
		pref, err = outbox.NewPreference(cmd.UserID, cmd.OrgID, cmd.Channels, cmd.Events)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		before = map[string]interface{}{
			"channels": pref.Channels(),
			"events":   pref.Events(),
		}
		pref.Merge(cmd.Channels, cmd.Events)
	}

	if err := uc.preferenceRepo.Upsert(ctx, pref); err != nil {
		uc.logger.Errorw("failed to upsert user preference", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update user preference")
	}

	after := map[string]interface{}{
		"channels": pref.Channels(),
		"events":   pref.Events(),
	}
	if uc.auditor != nil {
		if err := uc.auditor.RecordPreferenceChange(ctx, cmd.OrgID, cmd.UserID, auditvo.ActionUpdatePreferences, before, after); err != nil {
			uc.logger.Warnw("failed to audit preference change", "error", err, "user_id", cmd.UserID)
		}
	}

	uc.logger.Infow("user preference updated", "user_id", cmd.UserID, "org_id", cmd.OrgID)

	return &UpdatePreferencesResult{
		UserID:   cmd.UserID,
		Channels: pref.Channels(),
		Events:   pref.Events(),
	}, nil
}
