package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*category.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	return categories, nil
}
