package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
}

type MarkNotificationReadResult struct {
	NotificationID uint
	Read           bool
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*MarkNotificationReadResult, error) {
	uc.logger.Infow("executing mark notification read use case", "notification_id", cmd.NotificationID)

	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	existing, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}

	existing.MarkAsRead()

	if err := uc.notificationRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("notification marked as read", "notification_id", existing.ID())

	return &MarkNotificationReadResult{
		NotificationID: existing.ID(),
		Read:           existing.Read(),
	}, nil
}
