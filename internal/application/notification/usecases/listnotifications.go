package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context) ([]*notification.Notification, error) {
	notifications, err := uc.notificationRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, err
	}

	return notifications, nil
}
