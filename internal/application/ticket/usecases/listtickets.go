package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]*ticket.Ticket, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return tickets, nil
}
