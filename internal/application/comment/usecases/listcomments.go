package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// ListCommentsQuery optionally narrows the listing to a single ticket.
type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo comment.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*comment.Comment, error) {
	if query.TicketID != 0 {
		comments, err := uc.commentRepo.ListByTicketID(ctx, query.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to list ticket comments", "ticket_id", query.TicketID, "error", err)
			return nil, err
		}
		return comments, nil
	}

	comments, err := uc.commentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err)
		return nil, err
	}

	return comments, nil
}
