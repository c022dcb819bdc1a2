package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) List(ctx context.Context) ([]*comment.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.toDomainSlice(commentModels)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*comment.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket comments: %w", err)
	}

	return r.toDomainSlice(commentModels)
}

func (r *CommentRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("user_id = ?", userID).Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments by user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments by ticket: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) toDomainSlice(commentModels []models.CommentModel) ([]*comment.Comment, error) {
	comments := make([]*comment.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}
	return comments, nil
}
