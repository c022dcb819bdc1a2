package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	LoginLimit  gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.LoginLimit, config.AuthHandler.Login)
	}
}
