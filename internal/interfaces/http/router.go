package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditApp "praxis/internal/application/audit"
	escalationApp "praxis/internal/application/escalation"
	outboxApp "praxis/internal/application/outbox"
	"praxis/internal/infrastructure/config"
	audithandlers "praxis/internal/interfaces/http/handlers/audit"
	escalationhandlers "praxis/internal/interfaces/http/handlers/escalation"
	outboxhandlers "praxis/internal/interfaces/http/handlers/outbox"
	"praxis/internal/interfaces/http/middleware"
	"praxis/internal/interfaces/http/routes"
	"praxis/internal/shared/logger"
)

// Router assembles the gin engine from the application services.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	escalationHandler *escalationhandlers.EscalationHandler
	outboxHandler     *outboxhandlers.OutboxHandler
	auditHandler      *audithandlers.AuditHandler
}

func NewRouter(
	escalationService *escalationApp.Service,
	outboxService *outboxApp.Service,
	auditService *auditApp.Service,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	return &Router{
		engine: gin.New(),
		cfg:    cfg,
		logger: log,

		escalationHandler: escalationhandlers.NewEscalationHandler(escalationService, cfg.Escalation),
		outboxHandler:     outboxhandlers.NewOutboxHandler(outboxService, cfg.Outbox),
		auditHandler:      audithandlers.NewAuditHandler(auditService, cfg.Audit),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	api.Use(middleware.Identity())

	routes.SetupEscalationRoutes(api, &routes.EscalationRouteConfig{
		EscalationHandler: r.escalationHandler,
	})
	routes.SetupOutboxRoutes(api, &routes.OutboxRouteConfig{
		OutboxHandler: r.outboxHandler,
	})
	routes.SetupAuditRoutes(api, &routes.AuditRouteConfig{
		AuditHandler: r.auditHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
