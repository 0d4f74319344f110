package escalation

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"praxis/internal/application/escalation/usecases"
	"praxis/internal/shared/errors"
)

type EscalateTaskRequest struct {
	WorkItemID uint   `json:"work_item_id" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=1000"`
	Trigger    string `json:"trigger" binding:"omitempty,oneof=SLA_BREACH BLOCKED MANUAL PRIORITY_CHANGE"`
}

func (r *EscalateTaskRequest) ToCommand(orgID, actorID uint, actorRole string) usecases.EscalateTaskCommand {
	trigger := r.Trigger
	if trigger == "" {
		trigger = "MANUAL"
	}
	return usecases.EscalateTaskCommand{
		WorkItemID: r.WorkItemID,
		OrgID:      orgID,
		Reason:     r.Reason,
		Trigger:    trigger,
		ActorID:    &actorID,
		ActorRole:  actorRole,
	}
}

type ResolveEscalationRequest struct {
	Note string `json:"note" binding:"omitempty,max=1000"`
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}
