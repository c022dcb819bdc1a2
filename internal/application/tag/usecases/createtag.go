package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type CreateTagCommand struct {
	Name string
}

// CreateTagResult reports either a fresh tag or, when the name folds to
// an existing one, that tag with Created set to false. Callers relying on
// tag creation being idempotent depend on this.
type CreateTagResult struct {
	TagID     uint
	Name      string
	Created   bool
	CreatedAt time.Time
}

type CreateTagUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo tag.Repository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*CreateTagResult, error) {
	uc.logger.Infow("executing create tag use case", "name", cmd.Name)

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	existing, err := uc.tagRepo.FindByNameFold(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check tag name", "name", cmd.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		uc.logger.Infow("tag name already exists, returning existing tag",
			"name", cmd.Name, "tag_id", existing.ID())
		return &CreateTagResult{
			TagID:     existing.ID(),
			Name:      existing.Name(),
			Created:   false,
			CreatedAt: existing.CreatedAt(),
		}, nil
	}

	newTag, err := tag.NewTag(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tagRepo.Create(ctx, newTag); err != nil {
		uc.logger.Errorw("failed to create tag", "error", err)
		return nil, err
	}

	uc.logger.Infow("tag created successfully", "tag_id", newTag.ID(), "name", newTag.Name())

	return &CreateTagResult{
		TagID:     newTag.ID(),
		Name:      newTag.Name(),
		Created:   true,
		CreatedAt: newTag.CreatedAt(),
	}, nil
}
