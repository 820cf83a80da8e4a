package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncabito/sentinela/internal/infrastructure/auth"
	"github.com/oncabito/sentinela/internal/infrastructure/config"
	"github.com/oncabito/sentinela/internal/interfaces/http/handlers"
	"github.com/oncabito/sentinela/internal/interfaces/http/middleware"
	"github.com/oncabito/sentinela/internal/shared/logger"
	"github.com/oncabito/sentinela/internal/shared/version"
)

// Router wires the admin API endpoints used by the support team.
type Router struct {
	engine        *gin.Engine
	ticketHandler *handlers.TicketHandler
	jwtService    *auth.JWTService
	logger        logger.Interface
}

func NewRouter(
	ticketHandler *handlers.TicketHandler,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		jwtService:    auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		logger:        log,
	}
}

// SetupRoutes registers all admin API routes.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Version,
		})
	})

	api := r.engine.Group("/api/v1")
	api.Use(middleware.Auth(r.jwtService, r.logger))
	{
		tickets := api.Group("/tickets")
		{
			tickets.GET("", r.ticketHandler.List)
			tickets.GET("/:id", r.ticketHandler.Get)
			tickets.GET("/protocol/:protocol", r.ticketHandler.GetByProtocol)
			tickets.POST("/:id/assign", r.ticketHandler.Assign)
			tickets.PUT("/:id/status", r.ticketHandler.ChangeStatus)
			tickets.POST("/:id/close", r.ticketHandler.Close)
			tickets.POST("/:id/elevate", r.ticketHandler.ElevateUrgency)
			tickets.POST("/:id/sync", middleware.RequireAdmin(), r.ticketHandler.Sync)
		}
	}
}

// GetEngine returns the underlying gin engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
