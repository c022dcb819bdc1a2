package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/usuarios")
	{
		// Registration is open; a staff token upgrades the request so
		// privileged roles can be assigned at creation time.
		users.POST("", config.AuthMiddleware.OptionalAuth(), config.UserHandler.CreateUser)

		// Specific paths go before parameterized ones to avoid conflicts.
		users.GET("/confirmar/:token", config.AuthHandler.ConfirmAccount)

		users.GET("",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRoles("agente", "admin"),
			config.UserHandler.ListUsers)
		users.GET("/:id", config.AuthMiddleware.RequireAuth(), config.UserHandler.GetUser)
		users.PATCH("/:id", config.AuthMiddleware.RequireAuth(), config.UserHandler.UpdateUser)
		users.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRoles("admin"),
			config.UserHandler.DeleteUser)
	}
}
