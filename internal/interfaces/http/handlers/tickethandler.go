package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/ticket/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	username, ok := c.Get("username")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	cmd := req.ToCommand(username.(string), !isStaffRequest(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(t))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.listTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponseList(tickets))
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ResolveIDParam(c, "id", "ticket", req.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}
