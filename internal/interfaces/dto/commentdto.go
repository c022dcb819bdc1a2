package dto

import (
	"time"

	commentUC "github.com/roblesfd/helpdesk-backend/internal/application/comment/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
)

// CreateCommentRequest represents HTTP request to comment on a ticket.
// The author is taken from the authenticated session.
type CreateCommentRequest struct {
	TicketID uint   `json:"ticketId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (r *CreateCommentRequest) ToCommand(userID uint) commentUC.CreateCommentCommand {
	return commentUC.CreateCommentCommand{
		TicketID: r.TicketID,
		UserID:   userID,
		Content:  r.Content,
	}
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticketId"`
	UserID    uint      `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCommentResponse(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func NewCommentResponseList(comments []*comment.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = NewCommentResponse(c)
	}
	return out
}
