package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// ContentRenderer turns Markdown article bodies into sanitized HTML.
type ContentRenderer interface {
	RenderSafe(markdown string) (string, error)
}

type CreateArticleCommand struct {
	AuthorID   uint
	Title      string
	Content    string
	CategoryID uint
	TagIDs     []uint
}

type CreateArticleResult struct {
	ArticleID uint
	Title     string
	CreatedAt time.Time
}

type CreateArticleUseCase struct {
	articleRepo  article.Repository
	categoryRepo category.Repository
	renderer     ContentRenderer
	logger       logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.Repository,
	categoryRepo category.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create article command", "error", err)
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to resolve article category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	// Reject bodies the renderer cannot process before anything is stored.
	if _, err := uc.renderer.RenderSafe(cmd.Content); err != nil {
		return nil, errors.NewValidationError("content is not valid markdown")
	}

	newArticle, err := article.NewArticle(cmd.AuthorID, cmd.Title, cmd.Content, cmd.CategoryID, cmd.TagIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Create(ctx, newArticle); err != nil {
		uc.logger.Errorw("failed to create article", "error", err)
		return nil, err
	}

	uc.logger.Infow("article created successfully", "article_id", newArticle.ID(), "author_id", cmd.AuthorID)

	return &CreateArticleResult{
		ArticleID: newArticle.ID(),
		Title:     newArticle.Title(),
		CreatedAt: newArticle.CreatedAt(),
	}, nil
}

func (uc *CreateArticleUseCase) validateCommand(cmd CreateArticleCommand) error {
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
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
	if len(cmd.TagIDs) == 0 {
		return errors.NewValidationError("at least one tag is required")
	}
	return nil
}
