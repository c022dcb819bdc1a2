package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Create(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceTags(tx, model.ID, a.TagIDs())
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	tagIDs, err := r.loadTagIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, tagIDs)
}

func (r *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zero values through, so detaching the category
	// writes NULL.
	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	return r.replaceTags(tx, model.ID, a.TagIDs())
}

func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete article tags: %w", err)
	}

	result := tx.Delete(&models.ArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]*article.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var articleModels []models.ArticleModel
	if err := tx.Order("created_at DESC").Find(&articleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return r.toDomainSlice(tx, articleModels)
}

func (r *ArticleRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]*article.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var articleModels []models.ArticleModel
	if err := tx.
		Where("category_id = ?", categoryID).
		Find(&articleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find articles by category: %w", err)
	}

	return r.toDomainSlice(tx, articleModels)
}

func (r *ArticleRepository) Search(ctx context.Context, filter article.SearchFilter) ([]*article.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if len(filter.TagIDs) > 0 {
		query = query.Where(
			"id IN (?)",
			tx.Model(&models.ArticleTagModel{}).
				Select("article_id").
				Where("tag_id IN ?", filter.TagIDs),
		)
	}

	var articleModels []models.ArticleModel
	if err := query.Order("created_at DESC").Find(&articleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return r.toDomainSlice(tx, articleModels)
}

// replaceTags rewrites the join rows for an article to match the given set.
func (r *ArticleRepository) replaceTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear article tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]models.ArticleTagModel, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = models.ArticleTagModel{ArticleID: articleID, TagID: tagID}
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save article tags: %w", err)
	}
	return nil
}

func (r *ArticleRepository) loadTagIDs(tx *gorm.DB, articleID uint) ([]uint, error) {
	var tagIDs []uint
	if err := tx.
		Model(&models.ArticleTagModel{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &tagIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load article tags: %w", err)
	}
	return tagIDs, nil
}

func (r *ArticleRepository) toDomainSlice(tx *gorm.DB, articleModels []models.ArticleModel) ([]*article.Article, error) {
	articles := make([]*article.Article, len(articleModels))
	for i, model := range articleModels {
		tagIDs, err := r.loadTagIDs(tx, model.ID)
		if err != nil {
			return nil, err
		}
		a, err := r.mapper.ToDomain(&model, tagIDs)
		if err != nil {
			return nil, err
		}
		articles[i] = a
	}
	return articles, nil
}
