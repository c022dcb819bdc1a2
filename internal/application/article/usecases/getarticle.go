package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type GetArticleQuery struct {
	ArticleID uint
}

// GetArticleResult pairs the stored article with its body rendered to
// sanitized HTML for direct display.
type GetArticleResult struct {
	Article      *article.Article
	RenderedHTML string
}

type GetArticleUseCase struct {
	articleRepo article.Repository
	renderer    ContentRenderer
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo article.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*GetArticleResult, error) {
	if query.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	a, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		uc.logger.Warnw("failed to get article", "article_id", query.ArticleID, "error", err)
		return nil, err
	}

	rendered, err := uc.renderer.RenderSafe(a.Content())
	if err != nil {
		uc.logger.Errorw("failed to render article content", "article_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to render article content")
	}

	return &GetArticleResult{
		Article:      a,
		RenderedHTML: rendered,
	}, nil
}
