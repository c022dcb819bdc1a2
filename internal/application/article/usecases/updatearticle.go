package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// UpdateArticleCommand is a whole-record update: title, content, category
// and author must all be present. A nil TagIDs keeps the stored tag set;
// a non-nil slice replaces it.
type UpdateArticleCommand struct {
	ArticleID  uint
	Title      string
	Content    string
	CategoryID uint
	AuthorID   uint
	TagIDs     []uint
}

type UpdateArticleResult struct {
	ArticleID uint
	Title     string
	UpdatedAt time.Time
}

type UpdateArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewUpdateArticleUseCase(articleRepo article.Repository, logger logger.Interface) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update article command", "error", err)
		return nil, err
	}

	existing, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to get article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	if err := existing.Revise(cmd.Title, cmd.Content, cmd.CategoryID, cmd.AuthorID, cmd.TagIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update article", "article_id", existing.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("article updated successfully", "article_id", existing.ID())

	return &UpdateArticleResult{
		ArticleID: existing.ID(),
		Title:     existing.Title(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

func (uc *UpdateArticleUseCase) validateCommand(cmd UpdateArticleCommand) error {
	if cmd.ArticleID == 0 {
		return errors.NewValidationError("article ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	return nil
}
