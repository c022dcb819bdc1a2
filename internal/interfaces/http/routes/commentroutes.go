package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type CommentRouteConfig struct {
	CommentHandler *handlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCommentRoutes(engine *gin.Engine, config *CommentRouteConfig) {
	comments := engine.Group("/comentarios")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.POST("", config.CommentHandler.CreateComment)
		comments.GET("", config.CommentHandler.ListComments)
		comments.GET("/:id", config.CommentHandler.GetComment)
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
