package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// TransactionManager runs a function inside a single store transaction so
// every cascade step commits or rolls back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteCategoryCommand struct {
	CategoryID uint
}

// DeleteCategoryResult reports the cascade outcome: articles referencing
// the category are detached from it, never deleted.
type DeleteCategoryResult struct {
	CategoryID       uint
	Name             string
	ArticlesDetached int
}

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	articleRepo  article.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo category.Repository,
	articleRepo article.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error) {
	uc.logger.Infow("executing delete category use case", "category_id", cmd.CategoryID)

	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	existing, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	result := &DeleteCategoryResult{
		CategoryID: existing.ID(),
		Name:       existing.Name(),
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Articles are matched by category id, so a rename between lookup
		// and deletion cannot strand them.
		attached, err := uc.articleRepo.FindByCategoryID(txCtx, cmd.CategoryID)
		if err != nil {
			return err
		}

		for _, a := range attached {
			a.DetachCategory()
			if err := uc.articleRepo.Update(txCtx, a); err != nil {
				return err
			}
		}
		result.ArticlesDetached = len(attached)

		return uc.categoryRepo.Delete(txCtx, cmd.CategoryID)
	})
	if err != nil {
		uc.logger.Errorw("category deletion cascade failed", "category_id", cmd.CategoryID, "error", err)
		return nil, errors.NewInternalError("failed to delete category")
	}

	uc.logger.Infow("category deleted successfully",
		"category_id", result.CategoryID,
		"articles_detached", result.ArticlesDetached)

	return result, nil
}
