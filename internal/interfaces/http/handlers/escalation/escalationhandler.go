package escalation

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"praxis/internal/application/escalation/usecases"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/constants"
	"praxis/internal/shared/logger"
	"praxis/internal/shared/utils"
)

type EscalationHandler struct {
	service  EscalationService
	cooldown time.Duration
	window   time.Duration
	logger   logger.Interface
}

func NewEscalationHandler(service EscalationService, cfg sharedConfig.EscalationConfig) *EscalationHandler {
	return &EscalationHandler{
		service:  service,
		cooldown: time.Duration(cfg.CooldownHours) * time.Hour,
		window:   time.Duration(cfg.SLAWarningHours) * time.Hour,
		logger:   logger.NewLogger(),
	}
}

// EscalateTask handles POST /escalations
func (h *EscalationHandler) EscalateTask(c *gin.Context) {
	var req EscalateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for escalate task", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID, actorID, actorRole := callerIdentity(c)
	cmd := req.ToCommand(orgID, actorID, actorRole)

	result, err := h.service.EscalateTask(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task escalated successfully")
}

// ResolveEscalation handles POST /escalations/:id/resolve
func (h *EscalationHandler) ResolveEscalation(c *gin.Context) {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The note is optional; an empty body is a valid resolve.
	var req ResolveEscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID, actorID, actorRole := callerIdentity(c)
	cmd := usecases.ResolveEscalationCommand{
		RecordID:  recordID,
		OrgID:     orgID,
		Note:      req.Note,
		ActorID:   &actorID,
		ActorRole: actorRole,
	}

	result, err := h.service.ResolveEscalation(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Escalation resolved successfully", result)
}

// RunSLACheck handles POST /escalations/sla-check. It runs the same scan the
// scheduler runs, scoped to the caller's organization.
func (h *EscalationHandler) RunSLACheck(c *gin.Context) {
	orgID, _, _ := callerIdentity(c)

	result, err := h.service.RunSLACheck(c.Request.Context(), usecases.RunSLACheckCommand{
		OrgID:    orgID,
		Cooldown: h.cooldown,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "SLA check completed", result)
}

// GetOverdueTasks handles GET /tasks/overdue
func (h *EscalationHandler) GetOverdueTasks(c *gin.Context) {
	orgID, _, _ := callerIdentity(c)

	result, err := h.service.GetOverdueTasks(c.Request.Context(), usecases.GetOverdueTasksQuery{
		OrgID:    orgID,
		Cooldown: h.cooldown,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTasksApproachingSLA handles GET /tasks/approaching-sla
func (h *EscalationHandler) GetTasksApproachingSLA(c *gin.Context) {
	orgID, _, _ := callerIdentity(c)

	window := h.window
	if hoursStr := c.Query("window_hours"); hoursStr != "" {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil || hours < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid window_hours value")
			return
		}
		window = time.Duration(hours) * time.Hour
	}

	result, err := h.service.GetTasksApproachingSLA(c.Request.Context(), usecases.GetApproachingSLAQuery{
		OrgID:  orgID,
		Window: window,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTaskEscalationHistory handles GET /tasks/:id/escalations
func (h *EscalationHandler) GetTaskEscalationHistory(c *gin.Context) {
	workItemID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID, _, _ := callerIdentity(c)

	result, err := h.service.GetTaskEscalationHistory(c.Request.Context(), usecases.GetEscalationHistoryQuery{
		WorkItemID: workItemID,
		OrgID:      orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUserWorkload handles GET /users/:id/workload
func (h *EscalationHandler) GetUserWorkload(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID, _, _ := callerIdentity(c)

	result, err := h.service.GetUserWorkload(c.Request.Context(), usecases.GetUserWorkloadQuery{
		OrgID:  orgID,
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func callerIdentity(c *gin.Context) (orgID, userID uint, role string) {
	org, _ := c.Get(constants.ContextKeyOrgID)
	user, _ := c.Get(constants.ContextKeyUserID)
	r, _ := c.Get(constants.ContextKeyUserRole)

	orgID, _ = org.(uint)
	userID, _ = user.(uint)
	role, _ = r.(string)
	return orgID, userID, role
}
