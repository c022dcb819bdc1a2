package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type ArticleRouteConfig struct {
	ArticleHandler *handlers.ArticleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupArticleRoutes(engine *gin.Engine, config *ArticleRouteConfig) {
	articles := engine.Group("/articulos")
	{
		// The knowledge base is readable without a session.
		articles.GET("", config.ArticleHandler.ListArticles)
		articles.GET("/buscar", config.ArticleHandler.SearchArticles)
		articles.GET("/:id", config.ArticleHandler.GetArticle)

		staff := articles.Group("")
		staff.Use(
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRoles("agente", "admin"),
		)
		{
			staff.POST("", config.ArticleHandler.CreateArticle)
			staff.PATCH("/:id", config.ArticleHandler.UpdateArticle)
			staff.DELETE("/:id", config.ArticleHandler.DeleteArticle)
		}
	}
}
