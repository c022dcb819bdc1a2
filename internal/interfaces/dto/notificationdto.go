package dto

import (
	"time"

	notificationUC "github.com/roblesfd/helpdesk-backend/internal/application/notification/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
)

// CreateNotificationRequest represents HTTP request to create a notification
type CreateNotificationRequest struct {
	Recipient uint   `json:"recipient" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=ticket_update new_message system_update"`
}

func (r *CreateNotificationRequest) ToCommand() notificationUC.CreateNotificationCommand {
	return notificationUC.CreateNotificationCommand{
		Recipient: r.Recipient,
		Content:   r.Content,
		Type:      r.Type,
	}
}

type NotificationResponse struct {
	ID        uint      `json:"id"`
	Recipient uint      `json:"recipient"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		Recipient: n.Recipient(),
		Content:   n.Content(),
		Type:      n.Type().String(),
		Read:      n.Read(),
		CreatedAt: n.CreatedAt(),
	}
}

func NewNotificationResponseList(notifications []*notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = NewNotificationResponse(n)
	}
	return out
}
