package outbox

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"praxis/internal/application/outbox/usecases"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/constants"
	"praxis/internal/shared/logger"
	"praxis/internal/shared/utils"
)

type OutboxHandler struct {
	service OutboxService
	cfg     sharedConfig.OutboxConfig
	logger  logger.Interface
}

func NewOutboxHandler(service OutboxService, cfg sharedConfig.OutboxConfig) *OutboxHandler {
	return &OutboxHandler{
		service: service,
		cfg:     cfg,
		logger:  logger.NewLogger(),
	}
}

// EnqueueNotification handles POST /notifications
func (h *OutboxHandler) EnqueueNotification(c *gin.Context) {
	var req EnqueueNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for enqueue notification", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID := callerOrgID(c)
	result, err := h.service.EnqueueNotification(c.Request.Context(), req.ToCommand(orgID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Skipped {
		utils.SuccessResponse(c, http.StatusOK, "Notification skipped by user preferences", result)
		return
	}
	utils.CreatedResponse(c, result, "Notification enqueued successfully")
}

// ProcessQueue handles POST /notifications/process. The scheduler drains the
// queue continuously; this endpoint exists for operational on-demand drains.
func (h *OutboxHandler) ProcessQueue(c *gin.Context) {
	result, err := h.service.ProcessQueue(c.Request.Context(), usecases.ProcessQueueCommand{
		BatchSize:      h.cfg.BatchSize,
		MaxAttempts:    h.cfg.MaxAttempts,
		PerItemTimeout: time.Duration(h.cfg.PerItemTimeoutSeconds) * time.Second,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Queue processed", result)
}

// GetStats handles GET /notifications/stats
func (h *OutboxHandler) GetStats(c *gin.Context) {
	orgID := callerOrgID(c)

	result, err := h.service.GetOutboxStats(c.Request.Context(), usecases.GetOutboxStatsQuery{
		OrgID:  orgID,
		Window: time.Duration(h.cfg.StatsWindowDays) * 24 * time.Hour,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePreferences handles PUT /preferences. Callers manage their own
// preferences; the user comes from the identity headers, not the body.
func (h *OutboxHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update preferences", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID := callerOrgID(c)
	userIDVal, _ := c.Get(constants.ContextKeyUserID)
	userID, _ := userIDVal.(uint)

	result, err := h.service.UpdateUserPreferences(c.Request.Context(), req.ToCommand(orgID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preferences updated successfully", result)
}

func callerOrgID(c *gin.Context) uint {
	org, _ := c.Get(constants.ContextKeyOrgID)
	orgID, _ := org.(uint)
	return orgID
}
