package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type DeleteNotificationCommand struct {
	NotificationID uint
}

type DeleteNotificationResult struct {
	NotificationID uint
	Recipient      uint
}

type DeleteNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(notificationRepo notification.Repository, logger logger.Interface) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) (*DeleteNotificationResult, error) {
	uc.logger.Infow("executing delete notification use case", "notification_id", cmd.NotificationID)

	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	existing, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("notification deleted successfully", "notification_id", cmd.NotificationID)

	return &DeleteNotificationResult{
		NotificationID: existing.ID(),
		Recipient:      existing.Recipient(),
	}, nil
}
