package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zero values through; the read flag is a bool.
	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("notification not found")
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	var notificationModels []models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		n, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		notifications[i] = n
	}

	return notifications, nil
}

func (r *NotificationRepository) DeleteByRecipient(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("recipient = ?", userID).Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications by recipient: %w", result.Error)
	}
	return result.RowsAffected, nil
}
