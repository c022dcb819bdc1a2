package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// UpdateTicketCommand is a whole-record update: every field must be
// present or the update is rejected, even though only changed values end
// up rewritten.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  uint
}

type UpdateTicketResult struct {
	TicketID  uint
	Title     string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := existing.Rewrite(cmd.Title, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.ChangeStatus(ticket.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.ChangePriority(ticket.Priority(cmd.Priority)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.AssignTo(cmd.AssignedTo); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", existing.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", existing.ID())

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Title:     existing.Title(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Status) == 0 {
		return errors.NewValidationError("status is required")
	}
	if len(cmd.Priority) == 0 {
		return errors.NewValidationError("priority is required")
	}
	if cmd.AssignedTo == 0 {
		return errors.NewValidationError("assignee is required")
	}
	return nil
}
