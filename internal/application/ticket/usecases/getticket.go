package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return t, nil
}
