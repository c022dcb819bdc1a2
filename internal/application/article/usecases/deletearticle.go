package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
}

type DeleteArticleResult struct {
	ArticleID uint
	Title     string
}

type DeleteArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(articleRepo article.Repository, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error) {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	existing, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to get article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("article deleted successfully", "article_id", cmd.ArticleID)

	return &DeleteArticleResult{
		ArticleID: existing.ID(),
		Title:     existing.Title(),
	}, nil
}
