package dto

import (
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
)

// CreateTagRequest represents HTTP request to create a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type TagResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt(),
	}
}

func NewTagResponseList(tags []*tag.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = NewTagResponse(t)
	}
	return out
}
