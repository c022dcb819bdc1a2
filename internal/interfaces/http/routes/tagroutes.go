package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type TagRouteConfig struct {
	TagHandler     *handlers.TagHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTagRoutes(engine *gin.Engine, config *TagRouteConfig) {
	tags := engine.Group("/tags")
	{
		tags.GET("", config.TagHandler.ListTags)

		staff := tags.Group("")
		staff.Use(
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRoles("agente", "admin"),
		)
		{
			staff.POST("", config.TagHandler.CreateTag)
			staff.DELETE("/:id", config.TagHandler.DeleteTag)
		}
	}
}
