package routes

import (
	"github.com/gin-gonic/gin"

	audithandlers "praxis/internal/interfaces/http/handlers/audit"
)

type AuditRouteConfig struct {
	AuditHandler *audithandlers.AuditHandler
}

func SetupAuditRoutes(api *gin.RouterGroup, config *AuditRouteConfig) {
	audit := api.Group("/audit")
	{
		audit.GET("/export",
			config.AuditHandler.ExportAuditLog)
		audit.GET("/verify",
			config.AuditHandler.VerifyHashChain)
		audit.POST("",
			config.AuditHandler.LogAudit)
		audit.GET("",
			config.AuditHandler.GetAuditLog)
	}
}
