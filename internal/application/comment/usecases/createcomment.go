package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type CreateCommentCommand struct {
	TicketID uint
	UserID   uint
	Content  string
}

type CreateCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
}

type CreateCommentUseCase struct {
	commentRepo comment.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewCreateCommentUseCase(
	commentRepo comment.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*CreateCommentResult, error) {
	uc.logger.Infow("executing create comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create comment command", "error", err)
		return nil, err
	}

	// Comments may only be attached to tickets that exist.
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to resolve comment ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	newComment, err := comment.NewComment(cmd.TicketID, cmd.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, newComment); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err)
		return nil, err
	}

	uc.logger.Infow("comment created successfully", "comment_id", newComment.ID(), "ticket_id", cmd.TicketID)

	return &CreateCommentResult{
		CommentID: newComment.ID(),
		TicketID:  newComment.TicketID(),
		CreatedAt: newComment.CreatedAt(),
	}, nil
}

func (uc *CreateCommentUseCase) validateCommand(cmd CreateCommentCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	return nil
}
