package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/comment/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type CommentHandler struct {
	createCommentUC *usecases.CreateCommentUseCase
	getCommentUC    *usecases.GetCommentUseCase
	listCommentsUC  *usecases.ListCommentsUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	logger          logger.Interface
}

func NewCommentHandler(
	createCommentUC *usecases.CreateCommentUseCase,
	getCommentUC *usecases.GetCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		createCommentUC: createCommentUC,
		getCommentUC:    getCommentUC,
		listCommentsUC:  listCommentsUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger.NewLogger(),
	}
}

// CreateComment handles POST /comentarios
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := c.Get("user_id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.createCommentUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment created successfully")
}

// GetComment handles GET /comentarios/:id
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cm, err := h.getCommentUC.Execute(c.Request.Context(), usecases.GetCommentQuery{CommentID: commentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCommentResponse(cm))
}

// ListComments handles GET /comentarios. The optional ticket_id query
// narrows the listing to one ticket.
func (h *CommentHandler) ListComments(c *gin.Context) {
	var query usecases.ListCommentsQuery

	if raw := c.Query("ticket_id"); raw != "" {
		ticketID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || ticketID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid ticket_id parameter"))
			return
		}
		query.TicketID = uint(ticketID)
	}

	comments, err := h.listCommentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCommentResponseList(comments))
}

// DeleteComment handles DELETE /comentarios/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{CommentID: commentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", result)
}
