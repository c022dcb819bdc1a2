package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListTagsUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo tag.Repository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]*tag.Tag, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	return tags, nil
}
