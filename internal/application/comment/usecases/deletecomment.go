package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
}

type DeleteCommentResult struct {
	CommentID uint
	TicketID  uint
}

type DeleteCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID)

	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	existing, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)

	return &DeleteCommentResult{
		CommentID: existing.ID(),
		TicketID:  existing.TicketID(),
	}, nil
}
