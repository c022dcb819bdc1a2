package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categorias")
	{
		categories.GET("", config.CategoryHandler.ListCategories)

		staff := categories.Group("")
		staff.Use(
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRoles("agente", "admin"),
		)
		{
			staff.POST("", config.CategoryHandler.CreateCategory)
			staff.DELETE("/:id", config.CategoryHandler.DeleteCategory)
		}
	}
}
