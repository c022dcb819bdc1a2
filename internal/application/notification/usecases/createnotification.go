package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type CreateNotificationCommand struct {
	Recipient uint
	Content   string
	Type      string
}

type CreateNotificationResult struct {
	NotificationID uint
	Recipient      uint
	CreatedAt      time.Time
}

type CreateNotificationUseCase struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewCreateNotificationUseCase(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) (*CreateNotificationResult, error) {
	uc.logger.Infow("executing create notification use case", "recipient", cmd.Recipient, "type", cmd.Type)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create notification command", "error", err)
		return nil, err
	}

	// Notifications are addressed to existing users only.
	if _, err := uc.userRepo.GetByID(ctx, cmd.Recipient); err != nil {
		uc.logger.Errorw("failed to resolve notification recipient", "recipient", cmd.Recipient, "error", err)
		return nil, err
	}

	newNotification, err := notification.NewNotification(cmd.Recipient, cmd.Content, notification.Type(cmd.Type))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notificationRepo.Create(ctx, newNotification); err != nil {
		uc.logger.Errorw("failed to create notification", "error", err)
		return nil, err
	}

	uc.logger.Infow("notification created successfully",
		"notification_id", newNotification.ID(),
		"recipient", cmd.Recipient)

	return &CreateNotificationResult{
		NotificationID: newNotification.ID(),
		Recipient:      newNotification.Recipient(),
		CreatedAt:      newNotification.CreatedAt(),
	}, nil
}

func (uc *CreateNotificationUseCase) validateCommand(cmd CreateNotificationCommand) error {
	if cmd.Recipient == 0 {
		return errors.NewValidationError("recipient is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if !notification.Type(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid notification type")
	}
	return nil
}
