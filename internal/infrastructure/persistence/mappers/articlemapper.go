package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between Article domain entities and persistence models.
type ArticleMapper interface {
	// ToModel converts an article domain entity to a persistence model.
	// Tag rows are written separately by the repository.
	ToModel(a *article.Article) *models.ArticleModel

	// ToDomain converts an article persistence model to a domain entity.
	// Tag ids must be loaded separately by the repository.
	ToDomain(model *models.ArticleModel, tagIDs []uint) (*article.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(a *article.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:         a.ID(),
		AuthorID:   a.AuthorID(),
		Title:      a.Title(),
		Content:    a.Content(),
		CategoryID: a.CategoryID(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
		UpdatedAt:  a.UpdatedAt().UnixMilli(),
	}
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel, tagIDs []uint) (*article.Article, error) {
	return article.ReconstructArticle(
		model.ID,
		model.AuthorID,
		model.Title,
		model.Content,
		model.CategoryID,
		tagIDs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
