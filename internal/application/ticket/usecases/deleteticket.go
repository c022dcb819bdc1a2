package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// TransactionManager runs a function inside a single store transaction so
// every cascade step commits or rolls back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteTicketCommand struct {
	TicketID uint
}

// DeleteTicketResult reports the cascade outcome: comments attached to the
// ticket are removed with it rather than left orphaned.
type DeleteTicketResult struct {
	TicketID        uint
	Title           string
	CommentsDeleted int64
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo comment.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo comment.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := &DeleteTicketResult{
		TicketID: existing.ID(),
		Title:    existing.Title(),
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		deletedComments, err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		result.CommentsDeleted = deletedComments

		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("ticket deletion cascade failed", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted successfully",
		"ticket_id", result.TicketID,
		"comments_deleted", result.CommentsDeleted)

	return result, nil
}
