package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"praxis/internal/application/audit/usecases"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/constants"
	"praxis/internal/shared/logger"
	"praxis/internal/shared/utils"
)

type AuditHandler struct {
	service       AuditService
	exportMaxRows int
	logger        logger.Interface
}

func NewAuditHandler(service AuditService, cfg sharedConfig.AuditConfig) *AuditHandler {
	return &AuditHandler{
		service:       service,
		exportMaxRows: cfg.ExportMaxRows,
		logger:        logger.NewLogger(),
	}
}

// LogAudit handles POST /audit. Sibling platform services without their own
// ledger access write governed actions through this endpoint.
func (h *AuditHandler) LogAudit(c *gin.Context) {
	var req LogAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for log audit", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	orgID, actorID, actorRole := callerIdentity(c)
	result, err := h.service.LogAudit(c.Request.Context(), req.ToCommand(orgID, actorID, actorRole))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Audit entry recorded")
}

// GetAuditLog handles GET /audit
func (h *AuditHandler) GetAuditLog(c *gin.Context) {
	orgID, _, role := callerIdentity(c)

	query, err := parseAuditLogQuery(c, orgID, role)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetAuditLog(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}

// ExportAuditLog handles GET /audit/export. CSV streams with a text/csv
// content type; JSON goes through the standard envelope.
func (h *AuditHandler) ExportAuditLog(c *gin.Context) {
	orgID, _, _ := callerIdentity(c)

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid format, expected json or csv")
		return
	}

	result, err := h.service.ExportAuditLog(c.Request.Context(), usecases.ExportAuditLogQuery{
		OrgID:   orgID,
		Format:  format,
		MaxRows: h.exportMaxRows,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if format == "csv" {
		c.Header(constants.HeaderContentType, constants.ContentTypeCSV)
		c.Header("Content-Disposition", `attachment; filename="audit_export.csv"`)
		c.String(http.StatusOK, result.CSV)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// VerifyHashChain handles GET /audit/verify
func (h *AuditHandler) VerifyHashChain(c *gin.Context) {
	orgID, _, _ := callerIdentity(c)

	result, err := h.service.VerifyHashChain(c.Request.Context(), usecases.VerifyHashChainQuery{
		OrgID:   orgID,
		MaxRows: h.exportMaxRows,
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
