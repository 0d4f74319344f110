package routes

import (
	"github.com/gin-gonic/gin"

	escalationhandlers "praxis/internal/interfaces/http/handlers/escalation"
)

type EscalationRouteConfig struct {
	EscalationHandler *escalationhandlers.EscalationHandler
}

func SetupEscalationRoutes(api *gin.RouterGroup, config *EscalationRouteConfig) {
	escalations := api.Group("/escalations")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		escalations.POST("/sla-check",
			config.EscalationHandler.RunSLACheck)
		escalations.POST("",
			config.EscalationHandler.EscalateTask)
		escalations.POST("/:id/resolve",
			config.EscalationHandler.ResolveEscalation)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("/overdue",
			config.EscalationHandler.GetOverdueTasks)
		tasks.GET("/approaching-sla",
			config.EscalationHandler.GetTasksApproachingSLA)
		tasks.GET("/:id/escalations",
			config.EscalationHandler.GetTaskEscalationHistory)
	}

	users := api.Group("/users")
	{
		users.GET("/:id/workload",
			config.EscalationHandler.GetUserWorkload)
	}
}
