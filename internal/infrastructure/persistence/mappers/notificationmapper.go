package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between Notification domain entities and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		Recipient: n.Recipient(),
		Content:   n.Content(),
		Type:      n.Type().String(),
		Read:      n.Read(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.Recipient,
		model.Content,
		notification.Type(model.Type),
		model.Read,
		millisToTime(model.CreatedAt),
	)
}
