package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateKeyError("category name already taken")
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var categoryModels []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, len(categoryModels))
	for i, model := range categoryModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}

	return categories, nil
}

// FindByNameFold matches against the folded name key, so "Categoría" and
// "categoria" resolve to the same record.
func (r *CategoryRepository) FindByNameFold(ctx context.Context, name string) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("name_key = ?", collation.Fold(name)).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category by name key: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
