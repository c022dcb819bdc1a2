package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type SearchArticlesQuery struct {
	Query  string
	TagIDs []uint
}

type SearchArticlesUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewSearchArticlesUseCase(articleRepo article.Repository, logger logger.Interface) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, query SearchArticlesQuery) ([]*article.Article, error) {
	if len(query.Query) == 0 && len(query.TagIDs) == 0 {
		return nil, errors.NewValidationError("a search term or at least one tag is required")
	}

	articles, err := uc.articleRepo.Search(ctx, article.SearchFilter{
		Query:  query.Query,
		TagIDs: query.TagIDs,
	})
	if err != nil {
		uc.logger.Errorw("failed to search articles", "query", query.Query, "error", err)
		return nil, err
	}

	return articles, nil
}
