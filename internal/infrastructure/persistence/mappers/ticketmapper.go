package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AssignedTo:  t.AssignedTo(),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		ticket.Status(model.Status),
		ticket.Priority(model.Priority),
		model.AssignedTo,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
