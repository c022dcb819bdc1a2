package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name string
}

type CreateCategoryResult struct {
	CategoryID uint
	Name       string
	CreatedAt  time.Time
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name)

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	// Names that fold to the same form are the same category, so
	// "Categoría" cannot coexist with "categoria".
	duplicate, err := uc.categoryRepo.FindByNameFold(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check category name", "name", cmd.Name, "error", err)
		return nil, err
	}
	if duplicate != nil {
		uc.logger.Warnw("category name already taken", "name", cmd.Name, "existing_id", duplicate.ID())
		return nil, errors.NewDuplicateKeyError("category name already taken")
	}

	newCategory, err := category.NewCategory(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, newCategory); err != nil {
		uc.logger.Errorw("failed to create category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created successfully", "category_id", newCategory.ID(), "name", newCategory.Name())

	return &CreateCategoryResult{
		CategoryID: newCategory.ID(),
		Name:       newCategory.Name(),
		CreatedAt:  newCategory.CreatedAt(),
	}, nil
}
