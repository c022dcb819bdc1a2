package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type DeleteTagCommand struct {
	TagID uint
}

type DeleteTagResult struct {
	TagID uint
	Name  string
}

type DeleteTagUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewDeleteTagUseCase(tagRepo tag.Repository, logger logger.Interface) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *DeleteTagUseCase) Execute(ctx context.Context, cmd DeleteTagCommand) (*DeleteTagResult, error) {
	uc.logger.Infow("executing delete tag use case", "tag_id", cmd.TagID)

	if cmd.TagID == 0 {
		return nil, errors.NewValidationError("tag ID is required")
	}

	existing, err := uc.tagRepo.GetByID(ctx, cmd.TagID)
	if err != nil {
		uc.logger.Errorw("failed to get tag", "tag_id", cmd.TagID, "error", err)
		return nil, err
	}

	if err := uc.tagRepo.Delete(ctx, cmd.TagID); err != nil {
		uc.logger.Errorw("failed to delete tag", "tag_id", cmd.TagID, "error", err)
		return nil, err
	}

	uc.logger.Infow("tag deleted successfully", "tag_id", cmd.TagID)

	return &DeleteTagResult{
		TagID: existing.ID(),
		Name:  existing.Name(),
	}, nil
}
