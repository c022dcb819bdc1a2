package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/notification/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type NotificationHandler struct {
	createNotificationUC   *usecases.CreateNotificationUseCase
	getNotificationUC      *usecases.GetNotificationUseCase
	listNotificationsUC    *usecases.ListNotificationsUseCase
	markNotificationReadUC *usecases.MarkNotificationReadUseCase
	deleteNotificationUC   *usecases.DeleteNotificationUseCase
	logger                 logger.Interface
}

func NewNotificationHandler(
	createNotificationUC *usecases.CreateNotificationUseCase,
	getNotificationUC *usecases.GetNotificationUseCase,
	listNotificationsUC *usecases.ListNotificationsUseCase,
	markNotificationReadUC *usecases.MarkNotificationReadUseCase,
	deleteNotificationUC *usecases.DeleteNotificationUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		createNotificationUC:   createNotificationUC,
		getNotificationUC:      getNotificationUC,
		listNotificationsUC:    listNotificationsUC,
		markNotificationReadUC: markNotificationReadUC,
		deleteNotificationUC:   deleteNotificationUC,
		logger:                 logger.NewLogger(),
	}
}

// CreateNotification handles POST /notificaciones
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create notification", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNotificationUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notification created successfully")
}

// GetNotification handles GET /notificaciones/:id
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	n, err := h.getNotificationUC.Execute(c.Request.Context(), usecases.GetNotificationQuery{NotificationID: notificationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNotificationResponse(n))
}

// ListNotifications handles GET /notificaciones
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.listNotificationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNotificationResponseList(notifications))
}

// MarkNotificationRead handles PATCH /notificaciones/:id/leida
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markNotificationReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{NotificationID: notificationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}

// DeleteNotification handles DELETE /notificaciones/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteNotificationUC.Execute(c.Request.Context(), usecases.DeleteNotificationCommand{NotificationID: notificationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification deleted successfully", result)
}
