package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notificaciones")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.POST("", config.NotificationHandler.CreateNotification)
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/:id", config.NotificationHandler.GetNotification)
		notifications.PATCH("/:id/leida", config.NotificationHandler.MarkNotificationRead)
		notifications.DELETE("/:id", config.NotificationHandler.DeleteNotification)
	}
}
