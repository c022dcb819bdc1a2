package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
)

// CommentMapper handles the conversion between Comment domain entities and persistence models.
type CommentMapper interface {
	ToModel(c *comment.Comment) *models.CommentModel
	ToDomain(model *models.CommentModel) (*comment.Comment, error)
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToModel(c *comment.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *CommentMapperImpl) ToDomain(model *models.CommentModel) (*comment.Comment, error) {
	return comment.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		millisToTime(model.CreatedAt),
	)
}
