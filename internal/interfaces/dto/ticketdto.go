package dto

import (
	"time"

	ticketUC "github.com/roblesfd/helpdesk-backend/internal/application/ticket/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
)

// CreateTicketRequest represents HTTP request to create a ticket. The
// creator is taken from the authenticated session, never from the body.
type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=abierto en_proceso resuelto cerrado"`
	Priority    string `json:"priority" binding:"omitempty,oneof=baja media alta"`
	AssignedTo  uint   `json:"assignedTo"`
}

func (r *CreateTicketRequest) ToCommand(username string, isClient bool) ticketUC.CreateTicketCommand {
	return ticketUC.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
		Username:    username,
		IsClient:    isClient,
	}
}

// UpdateTicketRequest represents HTTP request to update a ticket. ID
// carries the target id for clients that send "undefined" in the path.
type UpdateTicketRequest struct {
	ID          uint   `json:"id"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=abierto en_proceso resuelto cerrado"`
	Priority    string `json:"priority" binding:"required,oneof=baja media alta"`
	AssignedTo  uint   `json:"assignedTo" binding:"required"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) ticketUC.UpdateTicketCommand {
	return ticketUC.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
	}
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AssignedTo:  t.AssignedTo(),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketResponseList(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = NewTicketResponse(t)
	}
	return out
}
