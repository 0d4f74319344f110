package routes

import (
	"github.com/gin-gonic/gin"

	outboxhandlers "praxis/internal/interfaces/http/handlers/outbox"
)

type OutboxRouteConfig struct {
	OutboxHandler *outboxhandlers.OutboxHandler
}

func SetupOutboxRoutes(api *gin.RouterGroup, config *OutboxRouteConfig) {
	notifications := api.Group("/notifications")
	{
		notifications.POST("/process",
			config.OutboxHandler.ProcessQueue)
		notifications.GET("/stats",
			config.OutboxHandler.GetStats)
		notifications.POST("",
			config.OutboxHandler.EnqueueNotification)
	}

	api.PUT("/preferences",
		config.OutboxHandler.UpdatePreferences)
}
