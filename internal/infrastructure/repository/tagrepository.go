package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type TagRepository struct {
	db     *gorm.DB
	mapper mappers.TagMapper
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{
		db:     db,
		mapper: mappers.NewTagMapper(),
	}
}

func (r *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateKeyError("tag name already taken")
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*tag.Tag, error) {
	var model models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("tag not found")
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag references: %w", err)
	}

	result := tx.Delete(&models.TagModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("tag not found")
	}
	return nil
}

func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	var tagModels []models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*tag.Tag, len(tagModels))
	for i, model := range tagModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tags[i] = t
	}

	return tags, nil
}

// FindByNameFold matches against the folded name key, so "Impresión" and
// "impresion" resolve to the same record.
func (r *TagRepository) FindByNameFold(ctx context.Context, name string) (*tag.Tag, error) {
	var model models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("name_key = ?", collation.Fold(name)).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tag by name key: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
