package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type GetCommentQuery struct {
	CommentID uint
}

type GetCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewGetCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *GetCommentUseCase {
	return &GetCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetCommentUseCase) Execute(ctx context.Context, query GetCommentQuery) (*comment.Comment, error) {
	if query.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	c, err := uc.commentRepo.GetByID(ctx, query.CommentID)
	if err != nil {
		uc.logger.Warnw("failed to get comment", "comment_id", query.CommentID, "error", err)
		return nil, err
	}

	return c, nil
}
