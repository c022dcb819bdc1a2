package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// CreateTicketCommand carries a new ticket. The creator is resolved
// server-side from Username; a client-supplied creator id is never
// trusted. IsClient relaxes the assignee requirement for self-service
// tickets.
type CreateTicketCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  uint
	Username    string
	IsClient    bool
}

type CreateTicketResult struct {
	TicketID  uint
	Title     string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "username", cmd.Username)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to resolve ticket creator", "username", cmd.Username, "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, creator.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != "" {
		if err := newTicket.ChangeStatus(ticket.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != "" {
		if err := newTicket.ChangePriority(ticket.Priority(cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AssignedTo != 0 {
		if err := newTicket.AssignTo(cmd.AssignedTo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "created_by", creator.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Title:     newTicket.Title(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}
	// Staff-created tickets must be assigned up front; client tickets are
	// triaged later.
	if !cmd.IsClient && cmd.AssignedTo == 0 {
		return errors.NewValidationError("assignee is required")
	}
	return nil
}
