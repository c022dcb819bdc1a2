package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type GetNotificationQuery struct {
	NotificationID uint
}

type GetNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewGetNotificationUseCase(notificationRepo notification.Repository, logger logger.Interface) *GetNotificationUseCase {
	return &GetNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetNotificationUseCase) Execute(ctx context.Context, query GetNotificationQuery) (*notification.Notification, error) {
	if query.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, query.NotificationID)
	if err != nil {
		uc.logger.Warnw("failed to get notification", "notification_id", query.NotificationID, "error", err)
		return nil, err
	}

	return n, nil
}
