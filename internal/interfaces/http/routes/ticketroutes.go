package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.AuthMiddleware.RequireRoles("agente", "admin"),
			config.TicketHandler.DeleteTicket)
	}
}
