package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListArticlesUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewListArticlesUseCase(articleRepo article.Repository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context) ([]*article.Article, error) {
	articles, err := uc.articleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	return articles, nil
}
