package audit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"praxis/internal/application/audit/usecases"
	"praxis/internal/shared/constants"
	"praxis/internal/shared/errors"
)

type LogAuditRequest struct {
	Action        string                 `json:"action" binding:"required"`
	ResourceType  string                 `json:"resource_type" binding:"required"`
	ResourceID    string                 `json:"resource_id" binding:"required"`
	Before        map[string]interface{} `json:"before,omitempty"`
	After         map[string]interface{} `json:"after,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
}

func (r *LogAuditRequest) ToCommand(orgID, actorID uint, actorRole string) usecases.LogAuditCommand {
	return usecases.LogAuditCommand{
		OrgID:         orgID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		Action:        r.Action,
		ResourceType:  r.ResourceType,
		ResourceID:    r.ResourceID,
		Before:        r.Before,
		After:         r.After,
		CorrelationID: r.CorrelationID,
	}
}

func parseAuditLogQuery(c *gin.Context, orgID uint, role string) (usecases.GetAuditLogQuery, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	query := usecases.GetAuditLogQuery{
		OrgID:        orgID,
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		Page:         page,
		PageSize:     pageSize,
	}

	if actorStr := c.Query("actor_id"); actorStr != "" {
		actorID, err := strconv.ParseUint(actorStr, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("Invalid actor_id")
		}
		query.ActorID = uint(actorID)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return query, errors.NewValidationError("Invalid from timestamp, expected RFC3339")
		}
		query.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return query, errors.NewValidationError("Invalid to timestamp, expected RFC3339")
		}
		query.To = &to
	}

	// A cross-tenant view is an admin capability; everyone else stays scoped
	// to their own organization.
	if c.Query("cross_tenant") == "true" && role == constants.RoleAdmin {
		query.CrossTenant = true
	}

	return query, nil
}
